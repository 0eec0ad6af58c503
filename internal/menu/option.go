package menu

import (
	"strconv"
	"strings"
)

// MainOption is the choice made on the main menu.
type MainOption int

// Main menu choices.
const (
	MainView MainOption = iota + 1
	MainAdd
	MainRemove
	MainCheckout
)

// String returns the letter that selects the option.
func (o MainOption) String() string {
	switch o {
	case MainView:
		return "v"
	case MainAdd:
		return "a"
	case MainRemove:
		return "r"
	case MainCheckout:
		return "c"
	default:
		return "MainOption(" + strconv.Itoa(int(o)) + ")"
	}
}

// needsItems reports whether the option is only offered for a non-empty cart.
func (o MainOption) needsItems() bool {
	return o == MainRemove || o == MainCheckout
}

func parseMainOption(answer string) (MainOption, bool) {
	switch strings.ToLower(answer) {
	case "v":
		return MainView, true
	case "a":
		return MainAdd, true
	case "r":
		return MainRemove, true
	case "c":
		return MainCheckout, true
	default:
		return 0, false
	}
}

// ViewOption is the choice made on the catalog screen.
type ViewOption int

// Catalog screen choices.
const (
	ViewAdd ViewOption = iota + 1
	ViewReturn
)

// String returns the letter that selects the option.
func (o ViewOption) String() string {
	switch o {
	case ViewAdd:
		return "a"
	case ViewReturn:
		return "m"
	default:
		return "ViewOption(" + strconv.Itoa(int(o)) + ")"
	}
}

func parseViewOption(answer string) (ViewOption, bool) {
	switch strings.ToLower(answer) {
	case "a":
		return ViewAdd, true
	case "m":
		return ViewReturn, true
	default:
		return 0, false
	}
}

func parseConfirm(answer string) (confirmed, ok bool) {
	switch strings.ToLower(answer) {
	case "y":
		return true, true
	case "n":
		return false, true
	default:
		return false, false
	}
}

// parseIndex accepts "m" (back to the main menu) or the canonical decimal
// form of a number in 1..count. "0", "01" and "+1" are not options.
func parseIndex(answer string, count int) (index int, back, ok bool) {
	if strings.EqualFold(answer, "m") {
		return 0, true, true
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > count || strconv.Itoa(n) != answer {
		return 0, false, false
	}
	return n, false, true
}

// parseQuantity accepts a non-empty run of ASCII digits. Signs, decimals and
// values that overflow int are rejected.
func parseQuantity(answer string) (int, bool) {
	if answer == "" {
		return 0, false
	}
	for _, r := range answer {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, false
	}
	return n, true
}
