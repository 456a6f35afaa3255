package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"quick-chess/quickmg"
)

var (
	errMalformedPosition = errors.New("malformed position command")
	errIllegalInPosition = errors.New("move leaves the king in check")
)

// Session is one UCI conversation: the current game and where protocol output
// and diagnostics go. The move generator knows nothing about it.
type Session struct {
	Name   string
	Author string

	board   quickmg.Board
	history History

	out io.Writer
	log *log.Logger
}

// NewSession starts a session at the initial position. A nil logger discards
// diagnostics.
func NewSession(out io.Writer, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Session{
		Name:   "quick-chess",
		Author: "Andrew Klotz",
		out:    out,
		log:    logger,
	}
	s.reset()
	return s
}

// Board returns the session's current position.
func (s *Session) Board() quickmg.Board { return s.board }

func (s *Session) reset() {
	s.board = quickmg.Initial()
	s.history.Reset(s.board)
}

// Run reads commands line by line until quit or end of input.
func (s *Session) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if s.Handle(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// send writes one protocol line and records it in the log.
func (s *Session) send(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	fmt.Fprintln(s.out, line)
	s.log.Printf(">> %s", line)
}

// Handle executes a single command line and reports whether the session should end.
func (s *Session) Handle(line string) (quit bool) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 { // ignore blank lines
		return false
	}
	s.log.Printf("<< %s", line)

	switch strings.ToLower(tokens[0]) {
	case "uci":
		s.send("id name %s", s.Name)
		s.send("id author %s", s.Author)
		s.send("uciok")
	case "isready":
		s.send("readyok")
	case "ucinewgame":
		s.reset()
	case "position":
		if err := s.position(tokens[1:]); err != nil {
			s.log.Printf("position rejected: %v", err)
			s.send("info string %v", err)
		}
	case "go":
		s.goCommand(tokens[1:])
	case "stop":
		// go answers synchronously, so there is never a search to stop.
	case "quit":
		return true
	case "d":
		for _, row := range strings.Split(s.board.String(), "\n") {
			s.send("%s", row)
		}
		s.send("Hash: %016x", s.board.Hash())
		s.send("Repetitions: %d", s.history.Repetitions())
	default:
		s.send("info string Unknown command: %s", line)
	}
	return false
}

// position handles "startpos|fen <fen> [moves ...]". The session changes only
// when the whole command succeeds.
func (s *Session) position(args []string) error {
	if len(args) == 0 {
		return errMalformedPosition
	}

	var board quickmg.Board
	var rest []string
	switch strings.ToLower(args[0]) {
	case "startpos":
		board = quickmg.Initial()
		rest = args[1:]
	case "fen":
		end := slices.IndexFunc(args, func(tok string) bool { return strings.EqualFold(tok, "moves") })
		if end < 0 {
			end = len(args)
		}
		var err error
		board, err = quickmg.ParseFEN(strings.Join(args[1:end], " "))
		if err != nil {
			return err
		}
		rest = args[end:]
	default:
		return fmt.Errorf("%w: unknown subcommand %q", errMalformedPosition, args[0])
	}

	var history History
	history.Reset(board)
	if len(rest) > 0 {
		if !strings.EqualFold(rest[0], "moves") {
			return fmt.Errorf("%w: expected moves, got %q", errMalformedPosition, rest[0])
		}
		for _, text := range rest[1:] {
			m, err := quickmg.ParseMove(text, board)
			if err != nil {
				return err
			}
			if !slices.Contains(board.LegalMoves(), m) {
				return fmt.Errorf("move %s in %s: %w", m, board.FEN(), errIllegalInPosition)
			}
			board = board.Apply(m)
			history.Push(board)
		}
	}

	s.board = board
	s.history = history
	return nil
}

// goLimits are the search limits a GUI may send with go. They are logged but
// do not change the answer.
type goLimits struct {
	wtime, btime, winc, binc int
	movestogo, depth         int
	nodes, movetime          int
	infinite                 bool
}

func (s *Session) parseGo(args []string) goLimits {
	var lim goLimits
	fields := map[string]*int{
		"wtime":     &lim.wtime,
		"btime":     &lim.btime,
		"winc":      &lim.winc,
		"binc":      &lim.binc,
		"movestogo": &lim.movestogo,
		"depth":     &lim.depth,
		"nodes":     &lim.nodes,
		"movetime":  &lim.movetime,
	}
	for i := 0; i < len(args); i++ {
		tok := strings.ToLower(args[i])
		if tok == "infinite" {
			lim.infinite = true
			continue
		}
		dst, ok := fields[tok]
		if !ok {
			s.send("info string Unknown go subcommand %s", args[i])
			continue
		}
		if i+1 >= len(args) {
			s.send("info string Malformed go command option %s", tok)
			continue
		}
		i++
		v, err := strconv.Atoi(args[i])
		if err != nil {
			s.send("info string Malformed go command option; could not convert %s", tok)
			continue
		}
		*dst = v
	}
	return lim
}

// goCommand answers with the first legal move, or the null move when the
// side to move has none.
func (s *Session) goCommand(args []string) {
	lim := s.parseGo(args)
	s.log.Printf("go %+v in %s", lim, s.board.FEN())
	if s.history.IsDraw() {
		s.log.Printf("position is drawn by rule (repetitions %d, halfmove clock %d)",
			s.history.Repetitions(), s.board.HalfmoveClock())
	}

	moves := s.board.LegalMoves()
	if len(moves) == 0 {
		if s.board.InCheckmate() {
			s.log.Printf("no legal moves: checkmate")
		} else {
			s.log.Printf("no legal moves: stalemate")
		}
		s.send("bestmove %s", quickmg.NullMove)
		return
	}
	s.send("bestmove %s", moves[0])
}
