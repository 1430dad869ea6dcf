// Package compiler implements a line-oriented reference compiler on top of ports.World.
//
// A document is plain text with directive lines:
//
//	#import "path"   inline another document, relative to the importing one
//	#read "path"     summarize a binary resource as "[path: N bytes]"
//	#today [+H|-H]   the current date, in local time or at a UTC offset in hours
//	#input key       a user supplied input value
package compiler

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/quire/internal/core/domain"
	"go.trai.ch/quire/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Compiler = (*Compiler)(nil)

// Compiler implements ports.Compiler.
type Compiler struct{}

// New creates a new Compiler.
func New() *Compiler {
	return &Compiler{}
}

// Compile expands the main document of world. The directives of one document are
// resolved concurrently by up to jobs workers; jobs below one selects the number of CPUs.
func (c *Compiler) Compile(ctx context.Context, world ports.World, jobs int) ([]byte, error) {
	if jobs < 1 {
		jobs = runtime.NumCPU()
	}
	out, err := c.expand(ctx, world, world.MainID(), nil, jobs)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// expand returns the text of id with every directive replaced by its result.
// stack holds the chain of documents importing id.
func (c *Compiler) expand(
	ctx context.Context,
	world ports.World,
	id domain.ResourceID,
	stack []domain.ResourceID,
	jobs int,
) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if slices.Contains(stack, id) {
		chain := make([]string, 0, len(stack)+1)
		for _, s := range stack {
			chain = append(chain, s.String())
		}
		chain = append(chain, id.String())
		return "", zerr.With(domain.ErrCyclicImport, "chain", strings.Join(chain, " -> "))
	}
	stack = append(slices.Clip(stack), id)

	src, err := world.Text(id)
	if err != nil {
		return "", err
	}

	lines := strings.Split(src.Text(), "\n")
	pieces := make([]string, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	offset := 0
	for i, line := range lines {
		start := offset
		offset += len(line) + 1

		d, err := parseLine(line)
		if err != nil {
			_ = g.Wait()
			return "", zerr.With(err, "position", position(world, id, start))
		}
		if d.kind == kindText {
			pieces[i] = d.text
			continue
		}

		g.Go(func() error {
			piece, err := c.resolve(gctx, world, id, d, stack, jobs)
			if err != nil {
				return err
			}
			pieces[i] = piece
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}

	return strings.Join(pieces, "\n"), nil
}

// position formats a byte offset of id as path:line:column using the line index
// of the already loaded text.
func position(world ports.World, id domain.ResourceID, offset int) string {
	lines, err := world.Lookup(id)
	if err != nil {
		return id.String()
	}
	line, ok := lines.ByteToLine(offset)
	if !ok {
		return id.String()
	}
	column, _ := lines.ByteToColumn(offset)
	return fmt.Sprintf("%s:%d:%d", id, line+1, column+1)
}

// resolve computes the replacement text of a directive found in the document from.
func (c *Compiler) resolve(
	ctx context.Context,
	world ports.World,
	from domain.ResourceID,
	d directive,
	stack []domain.ResourceID,
	jobs int,
) (string, error) {
	switch d.kind {
	case kindImport:
		text, err := c.expand(ctx, world, from.Join(d.path), stack, jobs)
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(text, "\n"), nil
	case kindRead:
		b, err := world.Bytes(from.Join(d.path))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[%s: %d bytes]", d.path, b.Len()), nil
	case kindToday:
		today, ok := world.Today(d.offset)
		if !ok {
			return "", zerr.With(domain.ErrInvalidDirective, "reason", "date is out of range")
		}
		return today.Date(), nil
	case kindInput:
		value, _ := world.Input(d.key)
		return value, nil
	default:
		return d.text, nil
	}
}
