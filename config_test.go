package ephemeris

import "testing"

func TestConfigDefaults(t *testing.T) {
	c := LoadConfig()
	if c.MoonSecularAcceleration != MoonSecularAcceleration {
		t.Fatalf("default secular acceleration %g", c.MoonSecularAcceleration)
	}
	if c.LightTimeIterations != 50 {
		t.Fatalf("default light-time cap %d", c.LightTimeIterations)
	}
	if c.PreferOuterFit {
		t.Fatal("the full planetary series must be preferred by default")
	}
	if c.Truncation != 0 {
		t.Fatalf("default truncation %g must evaluate the full theory", c.Truncation)
	}
	// immutable after first load
	if c2 := LoadConfig(); c2 != c {
		t.Fatal("configuration changed between loads")
	}
}
