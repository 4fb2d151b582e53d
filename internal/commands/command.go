package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/homemaint/internal/store"
)

type Type string

const (
	TypeAdd      Type = "add"
	TypeRemove   Type = "rm"
	TypeDone     Type = "done"
	TypeList     Type = "list"
	TypeActivity Type = "activity"
	TypeHelp     Type = "help"
)

var aliases = map[string]Type{
	"delete":   TypeRemove,
	"del":      TypeRemove,
	"complete": TypeDone,
	"ls":       TypeList,
}

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AddArgs carries raw text; the store does all validation. Frequency is
// empty when the user gave none and the handler picks the default.
type AddArgs struct {
	Description string
	Due         string
	Frequency   string
}

// SelectArgs holds the 1-based number the user typed. HasNumber is false when
// the number was omitted.
type SelectArgs struct {
	Number    int
	HasNumber bool
}

// Position converts the displayed number to a store position.
func (s SelectArgs) Position() store.Position {
	if !s.HasNumber {
		return store.Position{}
	}
	return store.At(s.Number - 1)
}

type ActivityArgs struct {
	Limit int
}

type Command struct {
	Type     Type
	Raw      string
	Add      *AddArgs
	Remove   *SelectArgs
	Done     *SelectArgs
	Activity *ActivityArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]
	if alias, ok := aliases[head]; ok {
		head = string(alias)
	}

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeRemove:
		sel, err := parseSelect(TypeRemove, args)
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeRemove, Raw: input, Remove: &sel}, nil
	case TypeDone:
		sel, err := parseSelect(TypeDone, args)
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeDone, Raw: input, Done: &sel}, nil
	case TypeList:
		if len(args) > 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "list takes no arguments"}
		}
		return Command{Type: TypeList, Raw: input}, nil
	case TypeActivity:
		return parseActivity(input, args)
	case TypeHelp:
		return Command{Type: TypeHelp, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd joins the remaining words with single spaces, so runs of
// whitespace inside a description collapse.
func parseAdd(raw string, args []string) (Command, error) {
	out := AddArgs{}
	words := make([]string, 0, len(args))
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case strings.HasPrefix(lower, "due:"):
			out.Due = arg[len("due:"):]
		case strings.HasPrefix(lower, "every:"):
			out.Frequency = arg[len("every:"):]
			if out.Frequency == "" {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "every: needs a frequency"}
			}
		default:
			words = append(words, arg)
		}
	}
	out.Description = strings.Join(words, " ")
	return Command{Type: TypeAdd, Raw: raw, Add: &out}, nil
}

func parseSelect(kind Type, args []string) (SelectArgs, error) {
	if len(args) == 0 {
		return SelectArgs{}, nil
	}
	if len(args) > 1 {
		return SelectArgs{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes a single task number", kind)}
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return SelectArgs{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid task number: %s", args[0])}
	}
	return SelectArgs{Number: n, HasNumber: true}, nil
}

func parseActivity(raw string, args []string) (Command, error) {
	out := ActivityArgs{}
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid activity limit: %s", args[0])}
		}
		out.Limit = n
	}
	return Command{Type: TypeActivity, Raw: raw, Activity: &out}, nil
}
