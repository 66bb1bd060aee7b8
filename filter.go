package sellergrid

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// filterEnv is the environment a user filter expression evaluates against,
// one instance per item.
type filterEnv struct {
	Description string
	Size        string
	Gender      string
	Donation    bool
	Price       int
	Selected    bool
	Valid       bool
}

// CompileFilter compiles a user-supplied boolean expression into an item
// predicate usable with Totals and the grid listing.
//
// Expressions see the fields of the item, e.g.
//
//	Price > 10 && !Donation
//	Selected && Gender == "girl"
//	Valid && Size != ""
func CompileFilter(src string) (func(Item) bool, error) {
	program, err := expr.Compile(src, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", src, err)
	}
	return func(it Item) bool {
		out, err := expr.Run(program, filterEnv{
			Description: it.ItemDescription,
			Size:        it.Size,
			Gender:      it.Gender.String(),
			Donation:    it.Donation,
			Price:       int(it.Price),
			Selected:    it.Selected,
			Valid:       it.IsValid(),
		})
		if err != nil {
			return false
		}
		b, _ := out.(bool)
		return b
	}, nil
}
