package rsasmall

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	mrand "math/rand"
	"strings"
	"testing"

	"github.com/benjivesterby/go-fwint/fwint"
	"github.com/benjivesterby/go-fwint/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeys(t *testing.T) {
	for _, bits := range []int{8, 9, 16, 64, 127, 256, 512} {
		bits := bits
		t.Run(fmt.Sprintf("%d", bits), func(t *testing.T) {
			rng := fwint.NewShakeRand([]byte{byte(bits), byte(bits >> 8)})
			kp, err := GenerateKeys(bits, rng, WithConfidence(10))
			require.NoError(t, err)

			n := kp.Modulus()
			require.True(t, kp.BitLen() == bits || kp.BitLen() == bits-1,
				"modulus of %d bits for a %d-bit key", kp.BitLen(), bits)

			// e*d = 1 mod phi implies v^(e*d) = v mod n for every v.
			for i := 0; i < 20; i++ {
				vb := bits - 1
				if vb > 64 {
					vb = 64
				}
				v, err := fwint.GenerateRandomBits(vb, rng)
				require.NoError(t, err)
				if v.Cmp(n) >= 0 {
					continue
				}
				c, err := kp.Encrypt(v)
				require.NoError(t, err)
				p, err := kp.Decrypt(c)
				require.NoError(t, err)
				require.True(t, p.Equal(v), "Decrypt(Encrypt(%s)) = %s", v, p)

				c, err = kp.Decrypt(v)
				require.NoError(t, err)
				p, err = kp.Encrypt(c)
				require.NoError(t, err)
				require.True(t, p.Equal(v), "Encrypt(Decrypt(%s)) = %s", v, p)
			}
		})
	}
}

func TestGenerateKeysDeterministic(t *testing.T) {
	k1, err := GenerateKeys(128, mrand.New(mrand.NewSource(7)))
	require.NoError(t, err)
	k2, err := GenerateKeys(128, mrand.New(mrand.NewSource(7)))
	require.NoError(t, err)
	require.True(t, k1.Modulus().Equal(k2.Modulus()))
	require.True(t, k1.PrivateExponent().Equal(k2.PrivateExponent()))
}

func TestGenerateKeysSystemRand(t *testing.T) {
	kp, err := GenerateKeys(64, nil, WithConfidence(10))
	require.NoError(t, err)
	require.True(t, kp.BitLen() == 64 || kp.BitLen() == 63)
}

func TestGenerateKeysSize(t *testing.T) {
	rng := fwint.NewShakeRand([]byte("size"))
	for _, bits := range []int{-1, 0, 7, MaxKeyBits + 1} {
		_, err := GenerateKeys(bits, rng)
		require.ErrorIs(t, err, ErrKeySize)
	}
}

func TestGenerateKeysLogging(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewWriter(&buf, slog.LevelDebug, false)
	kp, err := GenerateKeys(64, fwint.NewShakeRand([]byte("log")), WithLogger(l))
	require.NoError(t, err)
	out := buf.String()
	require.True(t, strings.Contains(out, "key pair generated"))
	require.True(t, strings.Contains(out, "d="+logging.Placeholder()))

	d, _ := kp.PrivateExponent().Text(10)
	require.False(t, strings.Contains(out, d))
}

func TestRange(t *testing.T) {
	kp, err := NewKeyPair(fwint.NewInt(3233), fwint.NewInt(2753), fwint.NewInt(17))
	require.NoError(t, err)

	_, err = kp.Encrypt(fwint.NewInt(-1))
	require.ErrorIs(t, err, ErrValueOutOfRange)
	_, err = kp.Decrypt(fwint.NewInt(3233))
	require.ErrorIs(t, err, ErrValueOutOfRange)

	// Textbook example: 65^17 mod 3233 = 2790.
	c, err := kp.Decrypt(fwint.NewInt(65))
	require.NoError(t, err)
	require.Equal(t, int64(2790), c.Int64())
	p, err := kp.Encrypt(c)
	require.NoError(t, err)
	require.Equal(t, int64(65), p.Int64())

	n, e := kp.PublicKey()
	require.Equal(t, int64(3233), n.Int64())
	require.Equal(t, int64(17), e.Int64())
	_, d := kp.PrivateKey()
	require.Equal(t, int64(2753), d.Int64())
}

func TestBytes(t *testing.T) {
	kp, err := GenerateKeys(256, fwint.NewShakeRand([]byte("bytes")))
	require.NoError(t, err)

	msg := []byte("hello, world")
	c, err := kp.EncryptBytes(msg)
	require.NoError(t, err)
	p, err := kp.DecryptBytes(c)
	require.NoError(t, err)
	require.Equal(t, msg, p)

	_, err = kp.EncryptBytes(bytes.Repeat([]byte{0xFF}, 64))
	require.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestNewKeyPair(t *testing.T) {
	_, err := NewKeyPair(fwint.NewInt(1), fwint.NewInt(3), fwint.NewInt(3))
	require.ErrorIs(t, err, ErrKeySize)
	_, err = NewKeyPair(fwint.NewInt(35), fwint.NewInt(0), fwint.NewInt(5))
	require.ErrorIs(t, err, fwint.ErrInvalidArgument)
	_, err = NewKeyPair(nil, fwint.NewInt(1), fwint.NewInt(5))
	require.ErrorIs(t, err, fwint.ErrInvalidArgument)
}

func TestJSON(t *testing.T) {
	kp, err := GenerateKeys(96, fwint.NewShakeRand([]byte("json")))
	require.NoError(t, err)

	data, err := json.Marshal(kp)
	require.NoError(t, err)

	var doc map[string]string
	require.NoError(t, json.Unmarshal(data, &doc))
	nh, _ := kp.Modulus().Text(16)
	require.Equal(t, nh, doc["n"])

	var kp2 KeyPair
	require.NoError(t, json.Unmarshal(data, &kp2))
	require.True(t, kp2.Modulus().Equal(kp.Modulus()))
	require.True(t, kp2.PublicExponent().Equal(kp.PublicExponent()))
	require.True(t, kp2.PrivateExponent().Equal(kp.PrivateExponent()))

	require.Error(t, json.Unmarshal([]byte(`{"n":"xyz","e":"3","d":"3"}`), &kp2))
	require.ErrorIs(t, json.Unmarshal([]byte(`{"n":"1","e":"3","d":"3"}`), &kp2), ErrKeySize)
}

func BenchmarkGenerateKeys512(b *testing.B) {
	bench_keygen_inner(b, 512)
}

func BenchmarkGenerateKeys1024(b *testing.B) {
	bench_keygen_inner(b, 1024)
}

func bench_keygen_inner(b *testing.B, bits int) {
	rng := fwint.NewShakeRand([]byte("bench_keygen"))
	for i := 0; i < b.N; i++ {
		GenerateKeys(bits, rng)
	}
}
