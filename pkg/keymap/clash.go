package keymap

import (
	"sort"
)

// DetectConflicts finds key sequences bound to different commands by more than one
// package. Duplicates inside a single package are NOT reported because the editor
// usually separates them with context rules that keyview does not evaluate.
func DetectConflicts(bindings []KeyBinding) []Conflict {
	keyUsage := make(map[string][]KeyBinding)
	var order []string

	for _, b := range bindings {
		seq := b.KeysText()
		if seq == "" {
			continue
		}
		if _, ok := keyUsage[seq]; !ok {
			order = append(order, seq)
		}
		keyUsage[seq] = append(keyUsage[seq], b)
	}

	var conflicts []Conflict
	for _, seq := range order {
		usages := keyUsage[seq]
		if len(usages) < 2 {
			continue
		}

		packages := make(map[string]bool)
		commands := make(map[string]bool)
		for _, u := range usages {
			packages[u.Package] = true
			commands[u.Command] = true
		}

		if len(packages) > 1 && len(commands) > 1 {
			conflicts = append(conflicts, Conflict{
				Keys:     seq,
				Bindings: usages,
			})
		}
	}

	// Sort conflicts by key sequence for consistent output
	sort.SliceStable(conflicts, func(i, j int) bool {
		return conflicts[i].Keys < conflicts[j].Keys
	})

	return conflicts
}

// CountByPackage returns how many bindings each package contributes.
func CountByPackage(bindings []KeyBinding) map[string]int {
	counts := make(map[string]int)
	for _, b := range bindings {
		counts[b.Package]++
	}
	return counts
}
