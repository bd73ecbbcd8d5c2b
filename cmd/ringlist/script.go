package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/phuslu/ringlist"
	"github.com/phuslu/ringlist/ascii"
	"github.com/phuslu/ringlist/mem"
)

// sipKey is the fixed key of the sip hash command so that outputs are reproducible.
var sipKey = [16]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

type runner struct {
	list *ringlist.List[string]
	out  io.Writer
}

func newRunner(out io.Writer, maxlen int) *runner {
	var options []ringlist.Option[string]
	if maxlen > 0 {
		options = append(options, ringlist.WithMaxLen[string](maxlen))
	}
	return &runner{list: ringlist.New[string](options...), out: out}
}

// Run executes every line of in, stopping at the first failing command.
func (r *runner) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "#") {
			continue
		}
		args := ascii.Fields(line)
		if len(args) == 0 {
			continue
		}
		glog.V(1).Infof("line %d: %s", lineno, strings.Join(args, " "))
		if err := r.exec(args); err != nil {
			return errors.Wrapf(err, "line %d", lineno)
		}
	}
	return errors.Wrap(scanner.Err(), "read script")
}

func (r *runner) exec(args []string) error {
	cmd, args := strings.ToLower(args[0]), args[1:]

	arity := map[string]int{
		"insert": 2, "push": 1, "get": 1, "set": 2, "remove": 1,
		"indexof": 2, "len": 0, "clear": 0, "dump": 0, "stats": 0, "hash": 2,
	}
	n, ok := arity[cmd]
	if !ok {
		return errors.Errorf("unknown command %q", cmd)
	}
	if len(args) != n {
		return errors.Errorf("%s: want %d arguments, got %d", cmd, n, len(args))
	}

	switch cmd {
	case "insert":
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return r.list.TryInsert(index, args[1])
	case "push":
		return r.list.TryInsert(r.list.Len(), args[0])
	case "get", "set", "remove":
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		if r.list.IsEmpty() {
			return errors.Errorf("%s %d: list is empty", cmd, index)
		}
		switch cmd {
		case "get":
			fmt.Fprintln(r.out, r.list.Get(index))
		case "set":
			fmt.Fprintln(r.out, r.list.Set(index, args[1]))
		case "remove":
			fmt.Fprintln(r.out, r.list.Remove(index))
		}
	case "indexof":
		start, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(r.out, r.list.IndexOf(start, args[1], strings.Compare))
	case "len":
		fmt.Fprintln(r.out, r.list.Len())
	case "clear":
		r.list.Clear()
	case "dump":
		fmt.Fprintln(r.out, strings.Join(r.list.AppendValues(nil), " "))
	case "stats":
		s := r.list.Stats()
		fmt.Fprintf(r.out, "get=%d set=%d insert=%d remove=%d forward=%d backward=%d\n",
			s.GetCalls, s.SetCalls, s.InsertCalls, s.RemoveCalls, s.ForwardSteps, s.BackwardSteps)
	case "hash":
		return r.hash(strings.ToLower(args[0]), []byte(args[1]))
	}
	return nil
}

func (r *runner) hash(alg string, p []byte) error {
	switch alg {
	case "bkdr":
		fmt.Fprintln(r.out, mem.BKDR(p))
	case "djb":
		fmt.Fprintln(r.out, mem.DJB(p))
	case "sip":
		fmt.Fprintf(r.out, "%016x\n", mem.SipHash(sipKey, p))
	case "xx":
		fmt.Fprintf(r.out, "%016x\n", mem.XXHash(p))
	default:
		return errors.Errorf("hash: unknown algorithm %q", alg)
	}
	return nil
}

func parseIndex(s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "bad index %q", s)
	}
	return index, nil
}
