package rsa

import "github.com/bnema/iterrsa/internal/domain"

func scalarEntries() []domain.Entry {
	return []domain.Entry{
		{Utterance: "some", World: "ENA", True: true},
		{Utterance: "some", World: "A", True: true},
		{Utterance: "all", World: "ENA", True: false},
		{Utterance: "all", World: "A", True: true},
	}
}

func symmetryEntries() []domain.Entry {
	return append(scalarEntries(),
		domain.Entry{Utterance: "some but not all", World: "ENA", True: true},
		domain.Entry{Utterance: "some but not all", World: "A", True: false},
	)
}

func dressEntries() []domain.Entry {
	return []domain.Entry{
		{Utterance: "dress", World: "R1", True: true},
		{Utterance: "dress", World: "R2", True: true},
		{Utterance: "dress", World: "R3", True: false},
		{Utterance: "red dress", World: "R1", True: true},
		{Utterance: "red dress", World: "R2", True: false},
		{Utterance: "red dress", World: "R3", True: false},
		{Utterance: "red object", World: "R1", True: true},
		{Utterance: "red object", World: "R2", True: false},
		{Utterance: "red object", World: "R3", True: true},
	}
}

func embeddedEntries() []domain.Entry {
	worlds := []string{"0", "M", "S", "MS"}
	truths := map[string][]bool{
		"not sue or mary":  {true, false, false, false},
		"not mary or sue":  {true, false, false, false},
		"not sue and mary": {true, true, true, false},
		"not mary and sue": {true, true, true, false},
		"sue or mary":      {false, true, true, true},
		"mary or sue":      {false, true, true, true},
		"sue and mary":     {false, false, false, true},
		"mary and sue":     {false, false, false, true},
		"not sue":          {true, true, false, false},
		"not mary":         {true, false, true, false},
		"sue":              {false, false, true, true},
		"mary":             {false, true, false, true},
	}
	order := []string{
		"not sue or mary", "not mary or sue", "not sue and mary", "not mary and sue",
		"sue or mary", "mary or sue", "sue and mary", "mary and sue",
		"not sue", "not mary", "sue", "mary",
	}

	entries := make([]domain.Entry, 0, len(order)*len(worlds))
	for _, utterance := range order {
		for i, world := range worlds {
			entries = append(entries, domain.Entry{Utterance: utterance, World: world, True: truths[utterance][i]})
		}
	}
	return entries
}
