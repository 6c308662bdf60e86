package service

import (
	"context"
	"fmt"
)

// RefCodeSource выдаёт монотонно растущие порядковые номера.
// В production это sequence в базе: коды уникальны по построению
// и не переиспользуются даже после удаления заявки.
type RefCodeSource interface {
	NextRefSeq(ctx context.Context) (int64, error)
}

// RefCodeGenerator формирует публичные номера заявок.
// Номер не секрет: для любого привилегированного чтения он предъявляется
// в паре с телефоном, поэтому случайный суффикс не нужен.
type RefCodeGenerator struct {
	src RefCodeSource
}

func NewRefCodeGenerator(src RefCodeSource) *RefCodeGenerator {
	return &RefCodeGenerator{src: src}
}

// Generate выдаёт следующий код вида LK-000001.
func (g *RefCodeGenerator) Generate(ctx context.Context) (string, error) {
	seq, err := g.src.NextRefSeq(ctx)
	if err != nil {
		return "", fmt.Errorf("refcode: %w", err)
	}
	return FormatRefCode(seq), nil
}

// FormatRefCode форматирует порядковый номер в публичный код.
// Дополнение нулями до шести знаков; большие номера не усекаются.
func FormatRefCode(seq int64) string {
	return fmt.Sprintf("LK-%06d", seq)
}
