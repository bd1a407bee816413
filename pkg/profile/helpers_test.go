package profile

import (
	"github.com/astrixforge/Device-Masker-sub000/pkg/generator"
	"github.com/astrixforge/Device-Masker-sub000/pkg/refdata"
)

func newTestGenerator(seed uint64) *generator.Generator {
	return generator.New(refdata.Default(), generator.NewSeededRand(seed))
}

func mustCarrier(mccmnc string) refdata.Carrier {
	c, err := refdata.Default().CarrierByMCCMNC(mccmnc)
	if err != nil {
		panic(err)
	}
	return c
}

func mustPreset(id string) refdata.DeviceProfilePreset {
	p, err := refdata.Default().PresetByID(id)
	if err != nil {
		panic(err)
	}
	return p
}

func newTestGeneratorWith(reg *refdata.Registry, seed uint64) *generator.Generator {
	return generator.New(reg, generator.NewSeededRand(seed))
}
