package uid

import "testing"

func TestSnowflakeGenerate(t *testing.T) {
	// Arrange
	gen, err := NewSnowflake()
	if err != nil {
		t.Fatalf("NewSnowflake() error = %v", err)
	}

	// Act
	seen := make(map[int64]struct{}, 1000)
	prev := int64(0)
	for range 1000 {
		id := gen.Generate()

		// Assert
		if id <= 0 {
			t.Fatalf("Generate() = %d, want positive", id)
		}
		if _, ok := seen[id]; ok {
			t.Fatalf("Generate() produced duplicate id %d", id)
		}
		if id < prev {
			t.Fatalf("Generate() = %d, want >= previous %d", id, prev)
		}
		seen[id] = struct{}{}
		prev = id
	}
}

func TestUUIDGenerate(t *testing.T) {
	// Arrange
	gen := NewUUID()

	// Act
	a := gen.Generate()
	b := gen.Generate()

	// Assert
	if len(a) != 36 {
		t.Fatalf("Generate() length = %d, want 36", len(a))
	}
	if a == b {
		t.Fatalf("Generate() returned the same value twice: %s", a)
	}
}
