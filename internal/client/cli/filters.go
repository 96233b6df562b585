package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/deckkeeper/internal/client/models"
)

const searchUsage = "search [name words] [colors=WUBRG] [type=<type>] [rarity=<rarity>] [set=<code>] [cmc=<n>] [min=<n>] [max=<n>]"

// parseFilters reads search arguments. key=value tokens set the matching
// filter; every other token is part of the card name. Underscores in type
// and set values stand for spaces.
func parseFilters(args []string) (models.SearchFilters, error) {
	var f models.SearchFilters
	var name []string

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			name = append(name, arg)
			continue
		}

		switch strings.ToLower(key) {
		case "name":
			name = append(name, value)
		case "colors", "c":
			for _, r := range strings.ToUpper(value) {
				f.Colors = append(f.Colors, string(r))
			}
		case "type", "t":
			f.Type = strings.ReplaceAll(value, "_", " ")
		case "rarity", "r":
			f.Rarity = strings.ToLower(value)
		case "set":
			f.Set = strings.ReplaceAll(value, "_", " ")
		case "cmc", "min", "max":
			n, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return f, usageError{usage: searchUsage + fmt.Sprintf(" (bad number %q)", value)}
			}
			switch strings.ToLower(key) {
			case "cmc":
				f.CMC = &n
			case "min":
				f.MinCMC = &n
			default:
				f.MaxCMC = &n
			}
		default:
			return f, usageError{usage: searchUsage}
		}
	}

	f.Name = strings.Join(name, " ")
	return f, nil
}
