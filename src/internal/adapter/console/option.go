package console

// Option is a menu entry selected by the user.
type Option int

const (
	OptionUnknown Option = iota
	OptionDeposit
	OptionWithdraw
	OptionStatement
	OptionNewAccount
	OptionListAccounts
	OptionNewCustomer
	OptionQuit
)

var optionsByKey = map[string]Option{
	"d":  OptionDeposit,
	"s":  OptionWithdraw,
	"e":  OptionStatement,
	"nc": OptionNewAccount,
	"lc": OptionListAccounts,
	"nu": OptionNewCustomer,
	"q":  OptionQuit,
}

// ParseOption matches the key exactly as typed; surrounding spaces make it
// an unknown option.
func ParseOption(raw string) Option {
	if option, ok := optionsByKey[raw]; ok {
		return option
	}
	return OptionUnknown
}
