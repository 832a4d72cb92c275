// Package trainer is the plain line-oriented front-end: it reads commands
// from an io.Reader, drives the session engine, and writes feedback to an
// io.Writer. It is what `tuxtrain run` uses, and it works when stdin or
// stdout is not a terminal.
package trainer

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/tuxtrain/tuxtrain/internal/session"
)

const (
	msgWelcome = `Welcome to tuxtrain!
This interactive program helps you practise common Linux commands.
Type the command you think solves the current level, or type 'hint' for help.
You can leave the trainer at any time by typing 'exit' or 'quit'.`
	msgCorrect   = "Correct! Well done."
	msgIncorrect = "Oops, that's not the right command. Try again or type 'hint' for help."
	msgNoHint    = "No hint available for this level."
	msgSkipped   = "(Command execution skipped for safety.)"
	msgGoodbye   = "Exiting the trainer. Goodbye!"
	msgFinished  = `Congratulations! You have completed all the levels!
You've learned a variety of Linux commands. Keep practising!`
)

// Trainer runs a session against a reader/writer pair.
type Trainer struct {
	sess *session.Session
	in   *bufio.Scanner
	out  io.Writer
}

func New(sess *session.Session, in io.Reader, out io.Writer) *Trainer {
	return &Trainer{
		sess: sess,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// Run plays the session until it finishes, the user quits, input runs dry,
// or the context is cancelled.
func (t *Trainer) Run(ctx context.Context) error {
	fmt.Fprintf(t.out, "%s\n\n", msgWelcome)

	for {
		current, ok := t.sess.Current()
		if !ok {
			break
		}
		fmt.Fprintf(t.out, "** Level %d: %s **\n%s\n", current.Number, current.DisplayTitle(), current.Description)

		stop, err := t.playLevel(ctx)
		if err != nil {
			return err
		}
		if stop || t.sess.Done() {
			break
		}
		fmt.Fprintln(t.out)
	}

	if t.sess.Finished() {
		fmt.Fprintf(t.out, "\n%s\n", msgFinished)
		summary := t.sess.Summary()
		fmt.Fprintf(t.out, "%d levels in %d attempts, took %s.\n", summary.Solved, summary.TotalAttempts, summary.Elapsed())
	}
	return nil
}

// playLevel prompts until the level is solved or the session ends. The
// returned stop flag is set when input ran dry before the session finished.
func (t *Trainer) playLevel(ctx context.Context) (stop bool, err error) {
	for {
		if err := ctx.Err(); err != nil {
			return true, err
		}

		fmt.Fprint(t.out, "> ")
		if !t.in.Scan() {
			if err := t.in.Err(); err != nil {
				return true, fmt.Errorf("failed to read input: %w", err)
			}
			fmt.Fprintln(t.out)
			return true, nil // EOF ends the session quietly
		}

		res := t.sess.Step(ctx, t.in.Text())
		switch res.Outcome {
		case session.OutcomeQuit:
			fmt.Fprintln(t.out, msgGoodbye)
			return false, nil
		case session.OutcomeHint:
			if res.Hint == "" {
				fmt.Fprintln(t.out, msgNoHint)
			} else {
				fmt.Fprintf(t.out, "Hint: %s\n", res.Hint)
			}
		case session.OutcomeIncorrect:
			fmt.Fprintln(t.out, msgIncorrect)
		case session.OutcomeCorrect, session.OutcomeFinished:
			fmt.Fprintln(t.out, msgCorrect)
			t.printDemonstration(res)
			return false, nil
		}
	}
}

func (t *Trainer) printDemonstration(res session.StepResult) {
	if res.ExecSkipped {
		fmt.Fprintln(t.out, msgSkipped)
		return
	}
	if res.Stdout != "" {
		fmt.Fprintln(t.out, res.Stdout)
	}
	if res.Stderr != "" {
		fmt.Fprintln(t.out, res.Stderr)
	}
}
