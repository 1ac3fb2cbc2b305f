package main

import (
	ladder "Lestnitsa/internal/calc/ladder"
	"fmt"
	"strings"
)

// FormatResult превращает результат расчета в текст для Telegram.
func FormatResult(result ladder.Result) string {
	var b strings.Builder

	if result.Error != "" {
		fmt.Fprintf(&b, "❌ Ошибка: %s\n", result.Error)
		if result.Suggestions != nil {
			b.WriteString("\n💡 РЕКОМЕНДАЦИИ:\n")
			writeSuggestions(&b, result)
		}
		return b.String()
	}

	b.WriteString("📊 РАСЧЕТ ЛЕСТНИЦЫ\n")
	b.WriteString(strings.Repeat("=", 30) + "\n")

	if result.Inputs != nil {
		in := result.Inputs
		b.WriteString("📈 ВХОДНЫЕ ДАННЫЕ:\n")
		fmt.Fprintf(&b, "Высота подъема: %g см\n", in.Height)
		fmt.Fprintf(&b, "Длина проема: %g см\n", in.Length)
		if in.Width != nil {
			fmt.Fprintf(&b, "Ширина проема: %g см\n", *in.Width)
		}
		if in.Angle != nil {
			fmt.Fprintf(&b, "Угол наклона: %g°\n", *in.Angle)
		}
		b.WriteString("\n")
	}

	if result.Angle != nil {
		b.WriteString("📐 УГОЛ НАКЛОНА:\n")
		if result.Angle.Value != nil {
			fmt.Fprintf(&b, "Рассчитанный угол: %g°\n", *result.Angle.Value)
		}
		fmt.Fprintf(&b, "Статус: %s\n\n", result.Angle.Status)
	}

	if result.Steps != nil {
		b.WriteString("🪜 СТУПЕНИ:\n")
		fmt.Fprintf(&b, "Количество ступеней: %d\n", result.Steps.Count)
		fmt.Fprintf(&b, "Высота подступенка: %g см\n", result.Steps.ActualHeight)
		fmt.Fprintf(&b, "Ширина ступени: %g см\n", result.Steps.ActualWidth)
		fmt.Fprintf(&b, "%s\n\n", result.Steps.Message)
	}

	if result.Feasibility != nil {
		f := result.Feasibility
		b.WriteString("✅ ВОЗМОЖНОСТЬ УСТАНОВКИ:\n")
		if f.Possible {
			b.WriteString("✅ Лестница может быть установлена\n")
		} else {
			b.WriteString("❌ Лестница не может быть установлена\n")
			if len(f.Issues) > 0 {
				b.WriteString("Проблемы:\n")
				for _, issue := range f.Issues {
					fmt.Fprintf(&b, "  • %s\n", issue)
				}
			}
		}
		if len(f.Warnings) > 0 {
			b.WriteString("Предупреждения:\n")
			for _, warning := range f.Warnings {
				fmt.Fprintf(&b, "  • %s\n", warning)
			}
		}
	}

	if result.Suggestions != nil {
		b.WriteString("\n💡 РЕКОМЕНДАЦИИ:\n")
		fmt.Fprintf(&b, "%s\n", result.Suggestions.Message)
		writeSuggestions(&b, result)
	}
	b.WriteString("\n")

	if result.LadderLength != nil && result.LadderLength.Value != nil {
		b.WriteString("📏 ДЛИНА ЛЕСТНИЦЫ:\n")
		fmt.Fprintf(&b, "%g см\n", *result.LadderLength.Value)
		fmt.Fprintf(&b, "%s\n\n", result.LadderLength.Message)
	}

	if result.Parts != nil {
		b.WriteString("🔨 НЕОБХОДИМЫЕ ДЕТАЛИ:\n")
		p := result.Parts
		for _, item := range []struct {
			name  string
			count int
		}{
			{"Ступени", p.Treads},
			{"Подступенки", p.Risers},
			{"Косоуры", p.Stringers},
			{"Балясины", p.Balusters},
			{"Поручни", p.Handrails},
			{"Площадки", p.Landings},
			{"Поворотные ступени", p.WinderTreads},
		} {
			if item.count > 0 {
				fmt.Fprintf(&b, "- %s: %d шт.\n", item.name, item.count)
			}
		}
	}

	return b.String()
}

func writeSuggestions(b *strings.Builder, result ladder.Result) {
	sug := result.Suggestions
	if sug.StandardOption != nil {
		std := sug.StandardOption
		fmt.Fprintf(b, "✅ %s\n", std.Note)
		fmt.Fprintf(b, "  %d ступеней\n", std.Steps)
		fmt.Fprintf(b, "  Высота: %g см, Ширина: %g см\n", std.Height, std.Width)
		if result.Inputs != nil {
			fmt.Fprintf(b, "  Займет: %g см из доступных %g см\n", std.Projection, result.Inputs.Length)
		} else {
			fmt.Fprintf(b, "  Займет: %g см\n", std.Projection)
		}
	}
	if sug.BestOption != nil {
		best := sug.BestOption
		b.WriteString("🔧 Альтернативный вариант:\n")
		fmt.Fprintf(b, "  %d ступеней\n", best.Steps)
		fmt.Fprintf(b, "  Высота: %g см, Ширина: %g см\n", best.Height, best.Width)
		fmt.Fprintf(b, "  Займет: %g см\n", best.Projection)
	} else if sug.MinimumOption != nil {
		min := sug.MinimumOption
		b.WriteString("🔻 Минимальные параметры:\n")
		fmt.Fprintf(b, "  %d ступеней\n", min.Steps)
		fmt.Fprintf(b, "  Высота: %g см, Ширина: %g см\n", min.Height, min.Width)
		fmt.Fprintf(b, "  Займет: %g см\n", min.Projection)
	}
}
