package draft

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NameSource names the team allocated at a given index
type NameSource interface {
	Name(index int) string
}

// GeneratedNames names teams "Team A" through "Team Z", wrapping around after
// Z. Callers that need more than 26 distinct names must supply them.
type GeneratedNames struct{}

// Name returns the generated name for index
func (GeneratedNames) Name(index int) string {
	if index < 0 {
		index = -index
	}
	return "Team " + string(alphabet[index%len(alphabet)])
}

type explicitNames struct {
	names    []string
	fallback NameSource
}

// ExplicitNames uses the given names in order and falls back to generated
// names once they run out.
func ExplicitNames(names ...string) NameSource {
	if len(names) == 0 {
		return GeneratedNames{}
	}
	copied := make([]string, len(names))
	copy(copied, names)
	return explicitNames{names: copied, fallback: GeneratedNames{}}
}

func (e explicitNames) Name(index int) string {
	if index >= 0 && index < len(e.names) && e.names[index] != "" {
		return e.names[index]
	}
	return e.fallback.Name(index)
}
