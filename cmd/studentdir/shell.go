package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hupe1980/studentdir"
	"github.com/hupe1980/studentdir/codec"
	"github.com/kballard/go-shellquote"
)

const usage = `commands:
  list                        all students by id
  get <id>                    one student
  save <id> <name> <major>    insert or update (id 0 allocates one)
  delete <id>                 remove a student
  majors                      majors with at least one student
  major <major>               students in a major
  load <file>                 save every record of a JSON array file
  known                       suggested majors
  help                        this text
  quit                        exit`

var errUsage = errors.New("usage")

// shell executes one command per input line against a Directory and writes
// one encoded document per result.
type shell struct {
	dir   *studentdir.Directory
	codec codec.Codec
	known []string
	out   io.Writer
	enc   *codec.LineWriter
}

type errorReply struct {
	Error string `json:"error"`
}

type deletedReply struct {
	Deleted studentdir.ID `json:"deleted"`
}

type loadReply struct {
	Saved  int      `json:"saved"`
	Failed int      `json:"failed"`
	Errors []string `json:"errors,omitempty"`
}

func (s *shell) run(ctx context.Context, in io.Reader) error {
	s.enc = codec.NewLineWriter(s.out, s.codec)

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		args, err := shellquote.Split(line)
		if err != nil {
			if err := s.emit(errorReply{Error: err.Error()}); err != nil {
				return err
			}
			continue
		}
		if len(args) == 0 {
			continue
		}

		quit, err := s.exec(ctx, args)
		if err != nil {
			if errors.Is(err, errUsage) {
				_, _ = fmt.Fprintln(s.out, usage)
				continue
			}
			if err := s.emit(errorReply{Error: err.Error()}); err != nil {
				return err
			}
		}
		if quit {
			return nil
		}
	}
	return sc.Err()
}

func (s *shell) exec(ctx context.Context, args []string) (bool, error) {
	switch cmd, rest := args[0], args[1:]; cmd {
	case "list":
		return false, s.emit(s.dir.List())
	case "get":
		if len(rest) != 1 {
			return false, errUsage
		}
		id, err := parseID(rest[0])
		if err != nil {
			return false, err
		}
		rec, err := s.dir.Get(id)
		if err != nil {
			return false, err
		}
		return false, s.emit(rec)
	case "save":
		if len(rest) != 3 {
			return false, errUsage
		}
		id, err := parseID(rest[0])
		if err != nil {
			return false, err
		}
		rec, err := s.dir.Save(ctx, studentdir.Record{ID: id, Name: rest[1], Major: rest[2]})
		if err != nil {
			return false, err
		}
		return false, s.emit(rec)
	case "delete":
		if len(rest) != 1 {
			return false, errUsage
		}
		id, err := parseID(rest[0])
		if err != nil {
			return false, err
		}
		if err := s.dir.Delete(ctx, id); err != nil {
			return false, err
		}
		return false, s.emit(deletedReply{Deleted: id})
	case "majors":
		return false, s.emit(s.dir.ListMajors())
	case "major":
		if len(rest) != 1 {
			return false, errUsage
		}
		return false, s.emit(s.dir.ListByMajor(rest[0]))
	case "load":
		if len(rest) != 1 {
			return false, errUsage
		}
		return false, s.load(ctx, rest[0])
	case "known":
		return false, s.emit(s.known)
	case "help":
		return false, errUsage
	case "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q", cmd)
	}
}

func (s *shell) emit(v any) error {
	return s.enc.Encode(v)
}

func (s *shell) load(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var recs []studentdir.Record
	if err := s.codec.Unmarshal(data, &recs); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	result := s.dir.SaveBatch(ctx, recs)
	reply := loadReply{Saved: len(result.Records), Failed: result.Failed()}
	for i, err := range result.Errors {
		if err != nil {
			reply.Errors = append(reply.Errors, fmt.Sprintf("record %d: %v", i, err))
		}
	}
	return s.emit(reply)
}

func parseID(s string) (studentdir.ID, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return studentdir.ID(id), nil
}
