package crypto

import (
	"encoding/hex"
	"hash"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/sha3"

	"github.com/screa/vanity-address-miner/pkg/types"
)

const (
	// AddressLength is the number of hex characters in an address (no 0x).
	AddressLength = 40
	// PrivateKeyLength is the number of hex characters in a private key.
	PrivateKeyLength = 64

	addressBytes     = AddressLength / 2
	keccakBytes      = 32
	addressByteIndex = keccakBytes - addressBytes
)

// Generator derives candidates from fresh secp256k1 keypairs.
// A Generator reuses its hasher and buffers, so it must not be shared
// between goroutines; give each worker its own.
type Generator struct {
	hasher  hash.Hash
	hashBuf [keccakBytes]byte
	addrBuf [AddressLength]byte
	keyBuf  [PrivateKeyLength]byte
}

// NewGenerator creates a new generator instance
func NewGenerator() *Generator {
	return &Generator{hasher: sha3.NewLegacyKeccak256()}
}

// Generate draws a keypair from crypto/rand and returns it with its address.
func (g *Generator) Generate() (types.Candidate, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return types.Candidate{}, err
	}
	return g.FromPrivateKey(priv), nil
}

// FromPrivateKey derives the candidate for an existing private key.
func (g *Generator) FromPrivateKey(priv *secp256k1.PrivateKey) types.Candidate {
	// Uncompressed serialization is 0x04 || X || Y; the address is taken
	// over X || Y only.
	pub := priv.PubKey().SerializeUncompressed()

	g.hasher.Reset()
	g.hasher.Write(pub[1:])
	sum := g.hasher.Sum(g.hashBuf[:0])
	hex.Encode(g.addrBuf[:], sum[addressByteIndex:])

	key := priv.Serialize()
	hex.Encode(g.keyBuf[:], key)
	priv.Zero()

	return types.Candidate{
		Address:    string(g.addrBuf[:]),
		PrivateKey: string(g.keyBuf[:]),
	}
}
