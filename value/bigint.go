/*
File    : lamina-go/value/bigint.go
Project : Lamina interpreter in Go
*/
package value

import "math/big"

// BigInt represents an arbitrary-precision integer value, declared with the
// `bigint` keyword. The wrapped big.Int is never nil.
type BigInt struct {
	Value *big.Int // The underlying arbitrary-precision value
}

// NewBigInt creates a BigInt from an int64.
func NewBigInt(v int64) *BigInt {
	return &BigInt{Value: big.NewInt(v)}
}

// NewBigIntFromString parses a decimal string into a BigInt.
// The second return value reports whether the text was a valid integer.
func NewBigIntFromString(text string) (*BigInt, bool) {
	v, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, false
	}
	return &BigInt{Value: v}, true
}

// GetType returns the type of the BigInt object
func (b *BigInt) GetType() Type {
	return BigIntType
}

// ToString returns the decimal string representation
func (b *BigInt) ToString() string {
	return b.Value.String()
}

// ToObject returns a detailed representation including type info (e.g., "<bigint(12345)>")
func (b *BigInt) ToObject() string {
	return "<bigint(" + b.Value.String() + ")>"
}
