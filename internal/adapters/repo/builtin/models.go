package builtin

import "github.com/bnema/iterrsa/internal/domain"

// Models returns fresh copies of the demonstration tables: scalar
// implicature, scalar implicature with a "some but not all" alternative,
// reference to a red dress, and embedded negated disjunction.
func Models() []domain.ModelDefinition {
	return []domain.ModelDefinition{
		{
			Name:        "dress",
			Description: "reference game: dress, red dress, red object over three referents",
			Entries: grid([]string{"R1", "R2", "R3"}, []row{
				{"dress", "110"},
				{"red dress", "100"},
				{"red object", "101"},
			}),
		},
		{
			Name:        "embedded",
			Description: "negation, disjunction and conjunction over who came: nobody (0), Mary, Sue or both",
			Entries: grid([]string{"0", "M", "S", "MS"}, []row{
				{"not sue or mary", "1000"},
				{"not mary or sue", "1000"},
				{"not sue and mary", "1110"},
				{"not mary and sue", "1110"},
				{"sue or mary", "0111"},
				{"mary or sue", "0111"},
				{"sue and mary", "0001"},
				{"mary and sue", "0001"},
				{"not sue", "1100"},
				{"not mary", "1010"},
				{"sue", "0011"},
				{"mary", "0101"},
			}),
		},
		{
			Name:        "scalar",
			Description: "scalar implicature: some vs all over exists-not-all (ENA) and all (A)",
			Entries: grid([]string{"ENA", "A"}, []row{
				{"some", "11"},
				{"all", "01"},
			}),
		},
		{
			Name:        "symmetry",
			Description: "scalar implicature with the symmetric alternative \"some but not all\"",
			Entries: grid([]string{"ENA", "A"}, []row{
				{"some", "11"},
				{"all", "01"},
				{"some but not all", "10"},
			}),
		},
	}
}

// row is an utterance with one truth digit per world.
type row struct {
	utterance string
	truths    string
}

func grid(worlds []string, rows []row) []domain.Entry {
	entries := make([]domain.Entry, 0, len(worlds)*len(rows))
	for _, r := range rows {
		for i, world := range worlds {
			entries = append(entries, domain.Entry{
				Utterance: r.utterance,
				World:     world,
				True:      r.truths[i] == '1',
			})
		}
	}
	return entries
}
