package model

import (
	"fmt"
)

// Attribute identifies one of the four tracked performance attributes.
//
// The set is closed: dyno run sheets record horsepower, torque, air-fuel
// ratio and boost, and queries dispatch on the variant rather than on a
// string name. The zero value is AttributeHP.
type Attribute uint8

const (
	// AttributeHP is horsepower.
	AttributeHP Attribute = iota
	// AttributeTorque is torque.
	AttributeTorque
	// AttributeAFR is the air-fuel ratio.
	AttributeAFR
	// AttributeBoost is boost pressure.
	AttributeBoost

	numAttributes
)

// NumAttributes is the size of the closed attribute set.
const NumAttributes = int(numAttributes)

// attributeNames holds the canonical display names, indexed by Attribute.
var attributeNames = [numAttributes]string{"HP", "Torque", "AFR", "Boost"}

// Attributes returns all attributes in their fixed canonical order:
// HP, Torque, AFR, Boost. This order is part of the query contract;
// DataRange/MinData/MaxData results follow it.
//
// The returned slice is a fresh copy.
func Attributes() []Attribute {
	return []Attribute{AttributeHP, AttributeTorque, AttributeAFR, AttributeBoost}
}

// Valid reports whether a is a member of the recognized attribute set.
func (a Attribute) Valid() bool {
	return a < numAttributes
}

// String returns the canonical display name ("HP", "Torque", "AFR", "Boost").
func (a Attribute) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Attribute(%d)", uint8(a))
	}
	return attributeNames[a]
}

// ParseAttribute returns the attribute with the given canonical name.
//
// It fails with *ErrInvalidAttribute for any name outside the recognized
// set. Matching is exact; attribute names are not case-folded.
func ParseAttribute(name string) (Attribute, error) {
	for i, n := range attributeNames {
		if n == name {
			return Attribute(i), nil
		}
	}
	return 0, &ErrInvalidAttribute{Name: name}
}

// MarshalText implements encoding.TextMarshaler so persisted records carry
// stable attribute names instead of enum ordinals.
func (a Attribute) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, &ErrInvalidAttribute{Name: a.String()}
	}
	return []byte(attributeNames[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Attribute) UnmarshalText(text []byte) error {
	parsed, err := ParseAttribute(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ErrInvalidAttribute indicates an attribute name outside the recognized
// set {HP, Torque, AFR, Boost}.
type ErrInvalidAttribute struct {
	Name string
}

func (e *ErrInvalidAttribute) Error() string {
	return fmt.Sprintf("invalid attribute: %q", e.Name)
}
