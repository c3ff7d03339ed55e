package calculator

// Role classifies a key for styling.
type Role int

const (
	RoleDigit Role = iota
	RoleOperator
	RoleFunction
	RoleEquals
)

// Special key actions. Any other action is a token appended to the entry.
const (
	ActionClear    = "clear"
	ActionEvaluate = "evaluate"
	ActionIntegral = "integral"
)

// Key is one button of the keypad.
type Key struct {
	Label  string
	Action string
	Role   Role
}

// IsToken reports whether pressing the key appends its action to the entry.
func (k Key) IsToken() bool {
	switch k.Action {
	case ActionClear, ActionEvaluate, ActionIntegral:
		return false
	}
	return true
}

// Keypad is the 5x5 button grid, row by row.
var Keypad = [5][5]Key{
	{{"∫", ActionIntegral, RoleFunction}, {"(", "(", RoleOperator}, {")", ")", RoleOperator}, {"^", "^", RoleOperator}, {"C", ActionClear, RoleOperator}},
	{{"sin", "sin(", RoleFunction}, {"7", "7", RoleDigit}, {"8", "8", RoleDigit}, {"9", "9", RoleDigit}, {"/", "/", RoleOperator}},
	{{"cos", "cos(", RoleFunction}, {"4", "4", RoleDigit}, {"5", "5", RoleDigit}, {"6", "6", RoleDigit}, {"*", "*", RoleOperator}},
	{{"tan", "tan(", RoleFunction}, {"1", "1", RoleDigit}, {"2", "2", RoleDigit}, {"3", "3", RoleDigit}, {"-", "-", RoleOperator}},
	{{"log", "log(", RoleFunction}, {"0", "0", RoleDigit}, {".", ".", RoleDigit}, {"=", ActionEvaluate, RoleEquals}, {"+", "+", RoleOperator}},
}
