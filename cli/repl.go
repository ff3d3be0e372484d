package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tuannh982/intsets/sets"
	"github.com/tuannh982/intsets/utils/collections"
)

func newReplCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Edit sets A and B through an interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(cmd.InOrStdin(), cmd.OutOrStdout(), opts.setOptions(), newPalette(opts.noColor))
			return s.run()
		},
	}
}

type session struct {
	in   *tokenReader
	out  io.Writer
	sets collections.Map[string, *sets.Set]
	pal  palette
}

func newSession(in io.Reader, out io.Writer, opts []sets.Option, pal palette) *session {
	s := &session{
		in:   newTokenReader(in),
		out:  out,
		sets: collections.NewHashMap[string, *sets.Set](),
		pal:  pal,
	}
	for _, name := range []string{"A", "B"} {
		_ = s.sets.Put(name, sets.NewEmpty(opts...), false)
	}
	return s
}

// run drives the main menu until the exit choice or the end of input.
func (s *session) run() error {
	err := s.loop()
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *session) loop() error {
	for {
		s.menu("Actions:",
			"1. Insert an element",
			"2. Remove the last element",
			"3. Print a set",
			"4. Set operations",
			"5. Exit",
		)
		choice, err := s.readInt()
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			err = s.insert()
		case 2:
			err = s.removeLast()
		case 3:
			err = s.print()
		case 4:
			err = s.operations()
		case 5:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *session) insert() error {
	for {
		fmt.Fprintln(s.out, "Enter the element to insert")
		v, err := s.readInt()
		if err != nil {
			return err
		}
		name, ok, err := s.chooseSet("Insert into which set")
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		set, _ := s.sets.Get(name)
		s.diag(set.Insert(v))
		return nil
	}
}

func (s *session) removeLast() error {
	set, err := s.requireSet("Remove from which set")
	if err != nil {
		return err
	}
	_, err = set.RemoveLast()
	s.diag(err)
	return nil
}

func (s *session) print() error {
	set, err := s.requireSet("Print which set")
	if err != nil {
		return err
	}
	s.diag(set.Print(s.out))
	return nil
}

func (s *session) operations() error {
	ops := map[int64]string{1: "union", 2: "difference", 3: "symdiff", 4: "intersection"}
	for {
		s.menu("Choose an operation:",
			"1. Union",
			"2. Difference",
			"3. Symmetric difference",
			"4. Intersection",
			"5. Complement",
			"6. Back",
		)
		choice, err := s.readInt()
		if err != nil {
			return err
		}
		a, _ := s.sets.Get("A")
		b, _ := s.sets.Get("B")

		var result *sets.Set
		switch {
		case choice == 6:
			return nil
		case choice == 5:
			result, err = s.complement()
		case ops[choice] != "":
			result, err = binaryOps[ops[choice]](a, b)
		default:
			continue
		}
		if errors.Is(err, io.EOF) {
			return err
		}
		if err != nil {
			s.diag(err)
			continue
		}
		if err := printResult(s.out, result); err != nil {
			return err
		}
	}
}

// complement asks for the operand and the exclusive bounds. An unknown set
// choice falls back to A.
func (s *session) complement() (*sets.Set, error) {
	name, ok, err := s.chooseSet("Complement of which set")
	if err != nil {
		return nil, err
	}
	if !ok {
		name = "A"
	}
	fmt.Fprintln(s.out, "Enter the minimum")
	min, err := s.readInt()
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(s.out, "Enter the maximum")
	max, err := s.readInt()
	if err != nil {
		return nil, err
	}
	set, _ := s.sets.Get(name)
	return sets.Complement(set, min, max)
}

// chooseSet reads one answer. ok is false when it names no set.
func (s *session) chooseSet(prompt string) (name string, ok bool, err error) {
	names := s.sets.Keys()
	lines := make([]string, 0, len(names))
	for i, n := range names {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, n))
	}
	s.menu(prompt, lines...)
	choice, err := s.readInt()
	if err != nil {
		return "", false, err
	}
	if choice < 1 || choice > int64(len(names)) {
		return "", false, nil
	}
	return names[choice-1], true, nil
}

// requireSet asks until a valid set is chosen.
func (s *session) requireSet(prompt string) (*sets.Set, error) {
	for {
		name, ok, err := s.chooseSet(prompt)
		if err != nil {
			return nil, err
		}
		if ok {
			set, _ := s.sets.Get(name)
			return set, nil
		}
	}
}

// readInt skips tokens that are not integers.
func (s *session) readInt() (int64, error) {
	for {
		v, err := s.in.nextInt()
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			s.diag(fmt.Errorf("not a number: %q", numErr.Num))
			continue
		}
		return v, err
	}
}

func (s *session) menu(title string, lines ...string) {
	s.pal.header.Fprintln(s.out, title)
	for _, l := range lines {
		fmt.Fprintln(s.out, l)
	}
}

func (s *session) diag(err error) {
	if err == nil {
		return
	}
	s.pal.errc.Fprintf(s.out, "error: %v\n", err)
}
