// Package tinkfpe integrates the ffx format-preserving encryption
// contexts with Tink's key management. Keys live in Tink keysets; radix,
// alphabet, and tweak stay operation parameters, supplied when the
// primitive is built from a keyset handle.
package tinkfpe

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/google/tink/go/core/registry"
	"github.com/google/tink/go/insecurecleartextkeyset"
	"github.com/google/tink/go/keyset"
	"github.com/google/tink/go/proto/tink_go_proto"
	"github.com/vdparikh/ffx"
	"google.golang.org/protobuf/proto"
)

const (
	// FF1KeyTypeURL is the type URL for FF1 keys in Tink's registry.
	FF1KeyTypeURL = "type.googleapis.com/google.crypto.tink.FpeFf1Key"

	// FF31KeyTypeURL is the type URL for FF3-1 keys in Tink's registry.
	FF31KeyTypeURL = "type.googleapis.com/google.crypto.tink.FpeFf31Key"
)

// KeyManager implements registry.KeyManager for FPE keys. One instance
// manages a single key type URL (FF1 or FF3-1).
type KeyManager struct {
	typeURL string
}

// NewFF1KeyManager creates a key manager for FF1 keys.
func NewFF1KeyManager() *KeyManager {
	return &KeyManager{typeURL: FF1KeyTypeURL}
}

// NewFF31KeyManager creates a key manager for FF3-1 keys.
func NewFF31KeyManager() *KeyManager {
	return &KeyManager{typeURL: FF31KeyTypeURL}
}

var (
	registerOnce sync.Once
	registerErr  error
)

// Register registers both key managers with Tink's registry so the key
// templates below can be used with keyset.NewHandle. Idempotent; call at
// application startup.
func Register() error {
	registerOnce.Do(func() {
		if registerErr = registry.RegisterKeyManager(NewFF1KeyManager()); registerErr != nil {
			return
		}
		registerErr = registry.RegisterKeyManager(NewFF31KeyManager())
	})
	return registerErr
}

// Primitive creates a primitive from serialized key material. The keyset
// carries only the raw AES key, so primitives built through the registry
// run over the full default alphabet; use New or NewFF31 to choose radix
// and alphabet.
func (km *KeyManager) Primitive(serializedKey []byte) (interface{}, error) {
	if km.typeURL == FF31KeyTypeURL {
		return ffx.NewFF31(serializedKey, nil, len(ffx.DefaultAlphabet), "")
	}
	return ffx.NewFF1(serializedKey, nil, 0, 0, len(ffx.DefaultAlphabet), "")
}

// DoesSupport returns true if this KeyManager manages the given key type.
func (km *KeyManager) DoesSupport(typeURL string) bool {
	return typeURL == km.typeURL
}

// TypeURL returns the type URL of the keys this KeyManager manages.
func (km *KeyManager) TypeURL() string {
	return km.typeURL
}

// NewKey is unsupported; FPE keys carry raw key material, not a protobuf
// message. Use NewKeyData.
func (km *KeyManager) NewKey(serializedKeyTemplate []byte) (proto.Message, error) {
	return nil, fmt.Errorf("tinkfpe: NewKey is not supported, use NewKeyData")
}

// NewKeyData generates fresh key material according to the template. The
// template value holds the key size in bytes as a single byte; an empty
// value selects AES-256.
func (km *KeyManager) NewKeyData(serializedKeyTemplate []byte) (*tink_go_proto.KeyData, error) {
	size := 32
	if len(serializedKeyTemplate) > 0 {
		size = int(serializedKeyTemplate[0])
		if size != 16 && size != 24 && size != 32 {
			return nil, fmt.Errorf("tinkfpe: invalid key size in template: %d bytes (must be 16, 24, or 32)", size)
		}
	}

	key := make([]byte, size)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("tinkfpe: failed to generate key: %w", err)
	}

	return &tink_go_proto.KeyData{
		TypeUrl:         km.typeURL,
		Value:           key,
		KeyMaterialType: tink_go_proto.KeyData_SYMMETRIC,
	}, nil
}

var _ registry.KeyManager = (*KeyManager)(nil)

func keyTemplate(typeURL string, size int) *tink_go_proto.KeyTemplate {
	return &tink_go_proto.KeyTemplate{
		TypeUrl:          typeURL,
		Value:            []byte{byte(size)},
		OutputPrefixType: tink_go_proto.OutputPrefixType_RAW,
	}
}

// FF1KeyTemplate creates a key template for FF1 with AES-256 keys.
func FF1KeyTemplate() *tink_go_proto.KeyTemplate { return keyTemplate(FF1KeyTypeURL, 32) }

// FF1KeyTemplateAES128 creates a key template for FF1 with AES-128 keys.
func FF1KeyTemplateAES128() *tink_go_proto.KeyTemplate { return keyTemplate(FF1KeyTypeURL, 16) }

// FF1KeyTemplateAES192 creates a key template for FF1 with AES-192 keys.
func FF1KeyTemplateAES192() *tink_go_proto.KeyTemplate { return keyTemplate(FF1KeyTypeURL, 24) }

// FF31KeyTemplate creates a key template for FF3-1 with AES-256 keys.
func FF31KeyTemplate() *tink_go_proto.KeyTemplate { return keyTemplate(FF31KeyTypeURL, 32) }

// FF31KeyTemplateAES128 creates a key template for FF3-1 with AES-128 keys.
func FF31KeyTemplateAES128() *tink_go_proto.KeyTemplate { return keyTemplate(FF31KeyTypeURL, 16) }

// FF31KeyTemplateAES192 creates a key template for FF3-1 with AES-192 keys.
func FF31KeyTemplateAES192() *tink_go_proto.KeyTemplate { return keyTemplate(FF31KeyTypeURL, 24) }

// NewKeysetHandleFromKey creates a keyset handle around a raw AES key,
// e.g. one exported from an HSM or an external key management system that
// is not a Tink KMS client. The key must be 16, 24, or 32 bytes and
// typeURL selects the mode (FF1KeyTypeURL or FF31KeyTypeURL).
//
// The resulting keyset is unencrypted; in production, encrypt it with an
// AEAD before writing it anywhere.
func NewKeysetHandleFromKey(key []byte, typeURL string) (*keyset.Handle, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("tinkfpe: invalid key size: %d bytes (must be 16, 24, or 32)", len(key))
	}
	if typeURL != FF1KeyTypeURL && typeURL != FF31KeyTypeURL {
		return nil, fmt.Errorf("tinkfpe: unsupported key type URL %q", typeURL)
	}

	idBytes := make([]byte, 4)
	if _, err := rand.Read(idBytes); err != nil {
		return nil, fmt.Errorf("tinkfpe: failed to generate key ID: %w", err)
	}
	keyID := binary.BigEndian.Uint32(idBytes)

	ks := &tink_go_proto.Keyset{
		PrimaryKeyId: keyID,
		Key: []*tink_go_proto.Keyset_Key{{
			KeyData: &tink_go_proto.KeyData{
				TypeUrl:         typeURL,
				Value:           key,
				KeyMaterialType: tink_go_proto.KeyData_SYMMETRIC,
			},
			KeyId:            keyID,
			Status:           tink_go_proto.KeyStatusType_ENABLED,
			OutputPrefixType: tink_go_proto.OutputPrefixType_RAW,
		}},
	}

	return insecurecleartextkeyset.Read(&keyset.MemReaderWriter{Keyset: ks})
}
