package commands

import "fmt"

type Result struct {
	Message string
	Lines   []string
}

type Handlers struct {
	Add      func(AddArgs) (Result, error)
	Remove   func(SelectArgs) (Result, error)
	Done     func(SelectArgs) (Result, error)
	List     func() (Result, error)
	Activity func(ActivityArgs) (Result, error)
	Help     func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeRemove:
		if handlers.Remove == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "rm handler not configured"}
		}
		return handlers.Remove(*cmd.Remove)
	case TypeDone:
		if handlers.Done == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "done handler not configured"}
		}
		return handlers.Done(*cmd.Done)
	case TypeList:
		if handlers.List == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "list handler not configured"}
		}
		return handlers.List()
	case TypeActivity:
		if handlers.Activity == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "activity handler not configured"}
		}
		return handlers.Activity(*cmd.Activity)
	case TypeHelp:
		if handlers.Help == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "help handler not configured"}
		}
		return handlers.Help()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

// Usage is the command reference shown by help.
func Usage() []string {
	return []string{
		"add <description> due:YYYY-MM-DD [every:Daily|Weekly|Monthly|Quarterly]",
		"rm <n>        delete task number n",
		"done <n>      mark task number n complete",
		"list          show scheduled tasks",
		"activity [n]  show the latest n journal entries",
		"help          show this reference",
	}
}
