package registry

import (
	"fmt"

	"github.com/arloliu/coapenc/errs"
	"github.com/arloliu/coapenc/internal/hash"
)

// Role identifies one of the encoder instances a Registry owns.
type Role uint8

const (
	// RootMap is the map written at the top level of the payload.
	RootMap Role = iota
	// Values is the array of readings inside the root map.
	Values
	// ValuesItem is the map of the current element of Values.
	ValuesItem

	roleCount
)

func (r Role) String() string {
	switch r {
	case RootMap:
		return "root_map"
	case Values:
		return "values"
	case ValuesItem:
		return "values_item"
	default:
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r < roleCount
}

type namedRole struct {
	name   string
	suffix string
	role   Role
}

// symbolic pairs with a fixed suffix; "values" matches any suffix and is handled
// separately.
var roleTable = func() map[uint64]namedRole {
	entries := []namedRole{
		{name: "root", suffix: "_map", role: RootMap},
	}

	m := make(map[uint64]namedRole, len(entries))
	for _, e := range entries {
		m[hash.EncoderKey(e.name, e.suffix)] = e
	}

	return m
}()

const valuesName = "values"

// ParseRole maps a symbolic (name, suffix) pair to its Role.
//
// ("root", "_map") is RootMap and "values" with any suffix is Values. Any other
// pair returns errs.ErrUnknownEncoder.
func ParseRole(name, suffix string) (Role, error) {
	if name == valuesName {
		return Values, nil
	}

	if e, ok := roleTable[hash.EncoderKey(name, suffix)]; ok && e.name == name && e.suffix == suffix {
		return e.role, nil
	}

	return 0, fmt.Errorf("%w: (%q, %q)", errs.ErrUnknownEncoder, name, suffix)
}
