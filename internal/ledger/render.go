package ledger

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// accountColumn is the column postings are padded to before the amount, so
// amounts line up the way hand-written beancount files do.
const accountColumn = 40

// Render writes entries as beancount text, one blank line between entries.
// Entries are rendered in the order given; callers wanting date order sort
// first.
func Render(w io.Writer, entries []Entry) error {
	var b strings.Builder
	for i, entry := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch e := entry.(type) {
		case *Transaction:
			renderTransaction(&b, e)
		case *Balance:
			renderBalance(&b, e)
		default:
			return fmt.Errorf("ledger: cannot render %T", entry)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func renderTransaction(b *strings.Builder, t *Transaction) {
	flag := t.Flag
	if flag == "" {
		flag = FlagOkay
	}
	fmt.Fprintf(b, "%s %s %s\n", t.Date, flag, strconv.Quote(t.Narration))
	writeMeta(b, "  ", t.Meta)
	for _, p := range t.Postings {
		if p.Amount != nil {
			fmt.Fprintf(b, "  %-*s  %s\n", accountColumn, p.Account, p.Amount)
		} else {
			fmt.Fprintf(b, "  %s\n", p.Account)
		}
		writeMeta(b, "    ", p.Meta)
	}
}

func renderBalance(b *strings.Builder, bal *Balance) {
	fmt.Fprintf(b, "%s balance %-*s  %s\n", bal.Date, accountColumn-8, bal.Account, bal.Amount)
	writeMeta(b, "  ", bal.Meta)
}

// writeMeta renders metadata in key order so output is deterministic.
func writeMeta(b *strings.Builder, indent string, meta map[string]string) {
	if len(meta) == 0 {
		return
	}
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, "%s%s: %s\n", indent, k, strconv.Quote(meta[k]))
	}
}
