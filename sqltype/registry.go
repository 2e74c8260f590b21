package sqltype

import (
	"fmt"
	"reflect"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Registry is a table of mappers keyed by native scalar type identity.
// A dialect carries one registry; variants derive a copy and substitute
// individual mappers. Registries are not safe for concurrent mutation,
// but once handed to a dialect they are treated as immutable.
type Registry struct {
	mappers map[reflect.Type]ColumnMapper
}

// NewRegistry returns a registry populated with the complete default
// mapper set. time.Time is served by the zone-aware Timestamp mapper;
// dialects preferring TimeTZ semantics register it explicitly on a
// derived registry.
func NewRegistry() *Registry {
	r := &Registry{mappers: make(map[reflect.Type]ColumnMapper)}
	Register(r, Bool())
	Register(r, Int16())
	Register(r, Int32())
	Register(r, Int64())
	Register(r, Float64())
	Register(r, Decimal())
	Register(r, String())
	Register(r, Bytes())
	Register(r, UUID())
	Register(r, Date())
	Register(r, Time())
	Register(r, DateTime())
	Register(r, Timestamp())
	return r
}

// Register stores m as the mapper for the native type T, replacing any
// previous registration.
func Register[T any](r *Registry, m Mapper[T]) {
	r.mappers[reflect.TypeFor[T]()] = m
}

// MapperFor returns the mapper registered for the native type T.
func MapperFor[T any](r *Registry) (Mapper[T], error) {
	rt := reflect.TypeFor[T]()
	cm, ok := r.mappers[rt]
	if !ok {
		return nil, &UnregisteredTypeError{Gotype: rt.String()}
	}
	m, ok := cm.(Mapper[T])
	if !ok {
		return nil, &UnregisteredTypeError{Gotype: rt.String()}
	}
	return m, nil
}

// CastTypeFor returns the SQL type text used in CAST expressions targeting
// the native type T.
func CastTypeFor[T any](r *Registry) (string, error) {
	m, err := MapperFor[T](r)
	if err != nil {
		return "", err
	}
	return m.CastType(), nil
}

// Derive returns a copy of the registry that can be mutated independently.
func (r *Registry) Derive() *Registry {
	d := &Registry{mappers: make(map[reflect.Type]ColumnMapper, len(r.mappers))}
	for k, v := range r.mappers {
		d.mappers[k] = v
	}
	return d
}

// coreTypes is the scalar set every end-state registry must cover.
var coreTypes = []reflect.Type{
	reflect.TypeFor[bool](),
	reflect.TypeFor[int16](),
	reflect.TypeFor[int32](),
	reflect.TypeFor[int64](),
	reflect.TypeFor[float64](),
	reflect.TypeFor[decimal.Decimal](),
	reflect.TypeFor[string](),
	reflect.TypeFor[[]byte](),
	reflect.TypeFor[uuid.UUID](),
	reflect.TypeFor[civil.Date](),
	reflect.TypeFor[civil.Time](),
	reflect.TypeFor[civil.DateTime](),
	reflect.TypeFor[time.Time](),
}

// Complete verifies the registry covers the whole core scalar set. Partial
// registries are legal only as intermediate derivation steps, never as the
// registry of a usable dialect.
func (r *Registry) Complete() error {
	for _, rt := range coreTypes {
		if _, ok := r.mappers[rt]; !ok {
			return fmt.Errorf("sqltype: registry is missing a mapper for %s", rt)
		}
	}
	return nil
}
