package tinkfpe

import (
	"fmt"

	"github.com/google/tink/go/insecurecleartextkeyset"
	"github.com/google/tink/go/keyset"
	"github.com/google/tink/go/proto/tink_go_proto"
	"github.com/vdparikh/ffx"
)

// New creates an FF1 primitive from a Tink keyset handle. The primary key
// of the keyset supplies the AES key; radix and alphabet parameterize the
// context as in ffx.NewFF1, and tweak becomes the default tweak with an
// unbounded length window.
//
// Example:
//
//	handle, err := keyset.NewHandle(tinkfpe.FF1KeyTemplate())
//	if err != nil {
//	    return err
//	}
//	primitive, err := tinkfpe.New(handle, []byte("tenant-1234"), 10, "")
//	if err != nil {
//	    return err
//	}
//	ct, err := primitive.Encrypt("123456789", nil)
func New(handle *keyset.Handle, tweak []byte, radix int, alphabet string) (ffx.FPE, error) {
	key, err := rawKey(handle, FF1KeyTypeURL)
	if err != nil {
		return nil, err
	}
	return ffx.NewFF1(key, tweak, 0, 0, radix, alphabet)
}

// NewFF31 creates an FF3-1 primitive from a Tink keyset handle. tweak, if
// non-nil, becomes the default tweak and must be exactly 7 bytes.
func NewFF31(handle *keyset.Handle, tweak []byte, radix int, alphabet string) (ffx.FPE, error) {
	key, err := rawKey(handle, FF31KeyTypeURL)
	if err != nil {
		return nil, err
	}
	return ffx.NewFF31(key, tweak, radix, alphabet)
}

// rawKey extracts the primary key's raw material from an unencrypted
// keyset. Keys wrapped by a KMS are not supported; decrypt the keyset
// into a handle first.
func rawKey(handle *keyset.Handle, typeURL string) ([]byte, error) {
	if handle == nil {
		return nil, fmt.Errorf("tinkfpe: keyset handle cannot be nil")
	}

	ks := insecurecleartextkeyset.KeysetMaterial(handle)
	for _, k := range ks.GetKey() {
		if k.GetKeyId() != ks.GetPrimaryKeyId() {
			continue
		}
		kd := k.GetKeyData()
		if kd == nil {
			continue
		}
		if kd.GetTypeUrl() != typeURL {
			return nil, fmt.Errorf("tinkfpe: primary key has type %q, want %q", kd.GetTypeUrl(), typeURL)
		}
		if kd.GetKeyMaterialType() != tink_go_proto.KeyData_SYMMETRIC {
			return nil, fmt.Errorf("tinkfpe: unsupported key material type %v", kd.GetKeyMaterialType())
		}
		return kd.GetValue(), nil
	}

	return nil, fmt.Errorf("tinkfpe: no primary key found in keyset")
}
