package commands

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/homemaint/internal/store"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add Clean gutters due:2025-11-15 every:Quarterly", TypeAdd},
		{"rm 2", TypeRemove},
		{"delete 1", TypeRemove},
		{"done 1", TypeDone},
		{"/complete 3", TypeDone},
		{"list", TypeList},
		{"ls", TypeList},
		{"activity 5", TypeActivity},
		{"HELP", TypeHelp},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddExtractsFields(t *testing.T) {
	cmd, err := Parse("add Replace furnace filter due:2026-01-10 EVERY:monthly")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := AddArgs{Description: "Replace furnace filter", Due: "2026-01-10", Frequency: "monthly"}
	if *cmd.Add != want {
		t.Fatalf("unexpected add args: %+v", *cmd.Add)
	}

	cmd, err = Parse("add due:2026-01-10")
	if err != nil {
		t.Fatalf("parse without description failed: %v", err)
	}
	if cmd.Add.Description != "" || cmd.Add.Frequency != "" {
		t.Fatalf("expected empty description and frequency, got %+v", *cmd.Add)
	}

	cmd, err = Parse("add Clean   the\tgutters due:2026-01-10")
	if err != nil {
		t.Fatalf("parse spaced description failed: %v", err)
	}
	if cmd.Add.Description != "Clean the gutters" {
		t.Fatalf("expected collapsed whitespace, got %q", cmd.Add.Description)
	}
}

func TestParseSelectPositions(t *testing.T) {
	cmd, err := Parse("rm")
	if err != nil {
		t.Fatalf("parse rm failed: %v", err)
	}
	if cmd.Remove.HasNumber {
		t.Fatalf("expected no number, got %+v", *cmd.Remove)
	}
	if _, ok := cmd.Remove.Position().Index(); ok {
		t.Fatal("expected unset position for bare rm")
	}

	cmd, err = Parse("done 3")
	if err != nil {
		t.Fatalf("parse done failed: %v", err)
	}
	if cmd.Done.Position() != store.At(2) {
		t.Fatalf("expected position 2, got %s", cmd.Done.Position())
	}

	if _, err := Parse("rm two"); !isCode(err, ErrCodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if _, err := Parse("done 1 2"); !isCode(err, ErrCodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]ErrorCode{
		"":            ErrCodeEmptyInput,
		"   /  ":      ErrCodeEmptyInput,
		"/unknown x":  ErrCodeUnknownCommand,
		"list tasks":  ErrCodeInvalidArgument,
		"activity 0":  ErrCodeInvalidArgument,
		"activity ab": ErrCodeInvalidArgument,
	}
	for in, code := range cases {
		if _, err := Parse(in); !isCode(err, code) {
			t.Fatalf("parse %q: expected %s, got %v", in, code, err)
		}
	}
	for _, in := range []string{"add Clean gutters due:2025-11-15 every:", "add EVERY: Clean gutters"} {
		if _, err := Parse(in); !isCode(err, ErrCodeInvalidArgument) {
			t.Fatalf("parse %q: expected empty frequency rejected, got %v", in, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add Clean gutters due:2025-11-15")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Description != "Clean gutters" || a.Due != "2025-11-15" {
				t.Fatalf("unexpected args: %+v", a)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	for _, in := range []string{"list", "rm 1", "done 1", "activity", "help", "add x"} {
		cmd, err := Parse(in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", in, err)
		}
		if _, err := Execute(cmd, Handlers{}); !isCode(err, ErrCodeHandlerMissing) {
			t.Fatalf("%q: expected missing handler error, got %v", in, err)
		}
	}
}

func isCode(err error, code ErrorCode) bool {
	var ce *CommandError
	return errors.As(err, &ce) && ce.Code == code
}
