package config

import (
	"github.com/varia-dev/varia/pkg/registry"
	"github.com/varia-dev/varia/pkg/variants"
)

// specCache memoizes compiled specs per component name so repeated
// resolutions of the same component share one compiled form.
type specCache struct {
	reg registry.Registry[*variants.Spec]
}

func newSpecCache() *specCache {
	return &specCache{reg: registry.New[*variants.Spec]()}
}

// get returns the cached spec for name, invoking compile on first use.
func (c *specCache) get(name string, compile func() (*variants.Spec, error)) (*variants.Spec, error) {
	if spec, err := c.reg.Get(name); err == nil {
		return spec, nil
	}
	spec, err := compile()
	if err != nil {
		return nil, err
	}
	// A concurrent caller may have compiled first; both results are
	// equivalent, so the registration error is ignorable.
	_ = c.reg.Register(name, spec)
	return spec, nil
}
