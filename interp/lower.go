package interp

import "strings"

// Lower scans the raw interior of an interpolated literal (the text between
// the quotes, exclusive) and produces its normalized part sequence. The scan
// is a single left-to-right pass with no backtracking:
//
//   - a doubled introducer ($$ or {{, per convention) emits one literal
//     introducer character
//   - an introducer followed by the opening grouper begins an embedded
//     capture, scanned to the matching close with nesting tracked (embedded
//     expressions may themselves contain the grouping characters)
//   - in the dollar convention, an introducer followed by an
//     identifier-start character begins an identifier-shorthand capture,
//     ending at the first character that cannot extend an identifier
//   - an introducer with nothing valid following it is an ordinary literal
//     character
//
// The output always begins and ends with a (possibly empty) fragment and
// never has two embedded parts adjacent; see PartSequence. Lower is pure:
// identical input yields an identical sequence.
func Lower(raw string, conv Convention) (PartSequence, error) {
	intro := conv.introducer()
	open, closer := conv.groupers()

	var (
		seq       PartSequence
		buf       strings.Builder
		fragStart int
	)
	flush := func() {
		seq = append(seq, Part{Kind: Fragment, Text: buf.String(), Offset: fragStart})
		buf.Reset()
	}

	i := 0
	for i < len(raw) {
		ch := raw[i]

		if conv == Brace && ch == closer {
			// }} collapses to one literal brace; a stray } has no matching
			// capture to close.
			if i+1 < len(raw) && raw[i+1] == closer {
				buf.WriteByte(closer)
				i += 2
				continue
			}
			return nil, unbalanced(i, "'}' without matching '{'")
		}

		if ch != intro {
			buf.WriteByte(ch)
			i++
			continue
		}

		// Doubled introducer escapes itself.
		if i+1 < len(raw) && raw[i+1] == intro {
			buf.WriteByte(intro)
			i += 2
			continue
		}

		// Identifier shorthand: $name.
		if conv.identShorthand() && i+1 < len(raw) && isIdentStart(raw[i+1]) {
			j := i + 1
			for j < len(raw) && isIdentByte(raw[j]) {
				j++
			}
			flush()
			seq = append(seq, Part{Kind: Embedded, Text: raw[i+1 : j], Offset: i + 1, Ident: true})
			fragStart = j
			i = j
			continue
		}

		// Grouped capture: $(expr) or {expr}. In the brace convention the
		// introducer is itself the opening grouper.
		capOpen := -1
		if conv == Brace {
			capOpen = i
		} else if i+1 < len(raw) && raw[i+1] == open {
			capOpen = i + 1
		}
		if capOpen >= 0 {
			opens := []int{capOpen}
			j := capOpen + 1
			for j < len(raw) && len(opens) > 0 {
				switch raw[j] {
				case open:
					opens = append(opens, j)
				case closer:
					opens = opens[:len(opens)-1]
				}
				j++
			}
			if len(opens) > 0 {
				return nil, unbalanced(opens[len(opens)-1], "'"+string(open)+"' is never closed")
			}
			flush()
			seq = append(seq, Part{Kind: Embedded, Text: raw[capOpen+1 : j-1], Offset: capOpen + 1})
			fragStart = j
			i = j
			continue
		}

		// Introducer with nothing valid following it stays literal text.
		buf.WriteByte(intro)
		i++
	}

	flush()
	return seq, nil
}

func isIdentStart(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isIdentByte(ch byte) bool {
	return isIdentStart(ch) || ch >= '0' && ch <= '9'
}
