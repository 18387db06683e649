package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPositionFromFEN creates a position from a FEN string. Missing trailing
// fields take their starting-position defaults.
//
// Castling availability is stored on the pieces: a king or corner rook
// without the matching right is marked as having moved. An en passant
// target square is accepted only if a pawn of the side that just moved
// stands in front of it.
func NewPositionFromFEN(fen string) (*chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	pos := &chess.Position{Board: chess.NewBoard(), ToMove: chess.White, FullMoveNumber: 1}

	if err := parsePiecePositions(pos.Board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(pos.Board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(pos, parts); err != nil {
		return nil, err
	}

	return pos, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	kings := [2]int{}
	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}

			kind := chess.KindFromLetter(byte(c))
			if kind == chess.NoKind {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-row, errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			if kind == chess.King {
				kings[colour]++
			}

			piece := chess.NewPiece(colour, kind)
			piece.HasMoved = !onHomeSquare(piece, chess.Sq(row, col))
			board.Set(chess.Sq(row, col), piece)
			col++
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}

	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return fmt.Errorf("need one king per side: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// onHomeSquare reports whether a piece could still be unmoved where it stands.
func onHomeSquare(piece chess.Piece, sq chess.Square) bool {
	switch piece.Kind {
	case chess.Pawn:
		return sq.Row == chess.PawnRow(piece.Colour)
	case chess.King:
		return sq == chess.Sq(chess.BackRow(piece.Colour), chess.KingCol)
	case chess.Rook:
		return sq.Row == chess.BackRow(piece.Colour) &&
			(sq.Col == chess.KingsideRookCol || sq.Col == chess.QueensideRookCol)
	default:
		return sq.Row == chess.BackRow(piece.Colour)
	}
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights applies the castling availability field by marking
// kings and rooks that have lost their rights as moved.
func parseCastlingRights(board *chess.Board, parts []string) error {
	field := "-"
	if len(parts) >= 3 {
		field = parts[2]
	}

	var rights chess.CastlingRights
	if field != "-" {
		for _, c := range field {
			switch c {
			case 'K':
				rights.WhiteKingside = true
			case 'Q':
				rights.WhiteQueenside = true
			case 'k':
				rights.BlackKingside = true
			case 'q':
				rights.BlackQueenside = true
			default:
				return fmt.Errorf("invalid castling field: %s: %w", field, errors.ErrInvalidFEN)
			}
		}
	}

	applyCastlingRight(board, chess.White, rights.WhiteKingside, rights.WhiteQueenside)
	applyCastlingRight(board, chess.Black, rights.BlackKingside, rights.BlackQueenside)
	return nil
}

// applyCastlingRight marks the king and corner rooks of colour as moved
// where the right is absent.
func applyCastlingRight(board *chess.Board, colour chess.Colour, kingside, queenside bool) {
	row := chess.BackRow(colour)
	markMoved := func(col int, keep bool) {
		sq := chess.Sq(row, col)
		piece := board.Get(sq)
		if piece.IsEmpty() || keep {
			return
		}
		piece.HasMoved = true
		board.Set(sq, piece)
	}

	markMoved(chess.KingsideRookCol, kingside)
	markMoved(chess.QueensideRookCol, queenside)
	markMoved(chess.KingCol, kingside || queenside)
}

// parseEnPassant parses the en passant target square field and records the
// origin of the double push that created it.
func parseEnPassant(pos *chess.Position, parts []string) error {
	pos.LastDoublePawnMove = nil
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}

	target, ok := chess.ParseSquare(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}

	pusher := pos.ToMove.Opposite()
	dir := chess.Forward(pusher)
	if target.Row != chess.PawnRow(pusher)+dir {
		return fmt.Errorf("en passant square %s on wrong rank: %w", target, errors.ErrInvalidFEN)
	}
	if !pos.Board.Get(target.Offset(dir, 0)).Is(pusher, chess.Pawn) {
		return nil
	}

	origin := target.Offset(-dir, 0)
	pos.LastDoublePawnMove = &origin
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		pos.HalfMoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		pos.FullMoveNumber = n
	}
	return nil
}

// PositionToFEN converts a position to a FEN string.
func PositionToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos.Board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos.ToMove)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos.Rights())
	sb.WriteByte(' ')
	writeEnPassant(&sb, pos)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfMoveClock, pos.FullMoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(chess.Sq(row, col))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, colour chess.Colour) {
	if colour == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, rights chess.CastlingRights) {
	if !rights.Any() {
		sb.WriteByte('-')
		return
	}
	if rights.WhiteKingside {
		sb.WriteByte('K')
	}
	if rights.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if rights.BlackKingside {
		sb.WriteByte('k')
	}
	if rights.BlackQueenside {
		sb.WriteByte('q')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, pos *chess.Position) {
	if pos.LastDoublePawnMove == nil {
		sb.WriteByte('-')
		return
	}
	pusher := pos.ToMove.Opposite()
	sb.WriteString(pos.LastDoublePawnMove.Offset(chess.Forward(pusher), 0).String())
}

// MustPositionFromFEN is like NewPositionFromFEN but panics on error.
// Intended for constants and tests.
func MustPositionFromFEN(fen string) *chess.Position {
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}
