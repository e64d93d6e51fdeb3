package utils

import (
	"fmt"
	"strings"

	"randomuser-bot/internal/grid"
	"randomuser-bot/internal/models"
)

// PageSize is the number of rows rendered in one grid message
const PageSize = 10

// FormatGrid renders the grid as a MarkdownV2 message
func FormatGrid(g *grid.Grid) string {
	if g.Loading {
		if g.LoadErr != "" {
			return FormatLoadError()
		}
		return FormatLoading()
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("👥 *Random users* %d/%d\n\n", len(g.Visible), len(g.Rows)))

	if len(g.Visible) == 0 {
		sb.WriteString("_No users match the search_\n")
	}

	for i, row := range g.Visible {
		if i == PageSize {
			break
		}
		sb.WriteString(FormatRow(row))
		sb.WriteString("\n")
	}

	if terms := g.Terms(); len(terms) > 0 {
		sb.WriteString("\n")
		sb.WriteString(FormatTerms(terms))
	}

	if g.Active != models.ColumnNone {
		sb.WriteString(fmt.Sprintf("\n✏️ Type to search *%s*", EscapeMarkdown(g.Active.Header())))
	}

	return sb.String()
}

// FormatRow renders one user as a grid line with its picture link
func FormatRow(row models.UserRow) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("*%d\\.* %s *%s %s*\n",
		row.ID+1,
		EscapeMarkdown(row.Title),
		EscapeMarkdown(row.First),
		EscapeMarkdown(row.Last),
	))
	sb.WriteString(fmt.Sprintf("   ✉️ %s\n", EscapeMarkdown(row.Email)))
	sb.WriteString(fmt.Sprintf("   📞 %s", EscapeMarkdown(row.Phone)))
	if row.LargePicture != "" {
		sb.WriteString(fmt.Sprintf("  🖼 [%s](%s)", models.PictureHeader, EscapeURL(row.LargePicture)))
	}
	sb.WriteString("\n")

	return sb.String()
}

// FormatTerms lists the active search terms
func FormatTerms(terms []grid.Term) string {
	if len(terms) == 0 {
		return "🔎 _No search terms_"
	}

	var sb strings.Builder
	sb.WriteString("🔎 *Search:*\n")
	for _, term := range terms {
		sb.WriteString(fmt.Sprintf("• %s: `%s`\n",
			EscapeMarkdown(term.Column.Header()),
			EscapeCode(term.Value),
		))
	}
	return sb.String()
}

// FormatTermsPlain is used in callback alerts, which do not support markup
func FormatTermsPlain(terms []grid.Term) string {
	if len(terms) == 0 {
		return "No search terms"
	}

	lines := make([]string, len(terms))
	for i, term := range terms {
		lines[i] = fmt.Sprintf("%s: %s", term.Column.Header(), term.Value)
	}
	return strings.Join(lines, "\n")
}

// FormatUserCard is the caption sent with a selected user's picture
func FormatUserCard(row models.UserRow) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("*%s %s %s*\n\n",
		EscapeMarkdown(row.Title),
		EscapeMarkdown(row.First),
		EscapeMarkdown(row.Last),
	))
	sb.WriteString(fmt.Sprintf("✉️ *Email:* %s\n", EscapeMarkdown(row.Email)))
	sb.WriteString(fmt.Sprintf("📞 *Phone:* %s\n", EscapeMarkdown(row.Phone)))
	sb.WriteString(fmt.Sprintf("🆔 *Row:* %d", row.ID))

	return sb.String()
}

func FormatLoading() string {
	return "⏳ Loading users\\.\\.\\."
}

func FormatLoadError() string {
	return "😔 Could not load users\\. Send /start to try again\\."
}

func FormatNoGridMessage() string {
	return "No users loaded yet\\. Send /start to load a batch\\."
}

func FormatHelpMessage() string {
	var sb strings.Builder

	sb.WriteString("*Random users grid*\n\n")
	sb.WriteString("/start \\- load a new batch of 10 users\n")
	sb.WriteString("/grid \\- show the current grid\n")
	sb.WriteString("/help \\- this message\n\n")
	sb.WriteString("Tap a column button to search it, then type the text\\. ")
	sb.WriteString("Tap the same column again to hide its search\\. ")
	sb.WriteString("Searches on several columns must all match\\.\n")
	sb.WriteString("Tap a user to open their card\\.")

	return sb.String()
}

// EscapeMarkdown escapes special characters for Telegram MarkdownV2
func EscapeMarkdown(text string) string {
	// \ _ * [ ] ( ) ~ ` > # + - = | { } . !
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		"_", "\\_",
		"*", "\\*",
		"[", "\\[",
		"]", "\\]",
		"(", "\\(",
		")", "\\)",
		"~", "\\~",
		"`", "\\`",
		">", "\\>",
		"#", "\\#",
		"+", "\\+",
		"-", "\\-",
		"=", "\\=",
		"|", "\\|",
		"{", "\\{",
		"}", "\\}",
		".", "\\.",
		"!", "\\!",
	)

	return replacer.Replace(text)
}

// EscapeURL escapes the inside of a MarkdownV2 inline link target
func EscapeURL(url string) string {
	return strings.NewReplacer("\\", "\\\\", ")", "\\)").Replace(url)
}

// EscapeCode escapes the inside of a MarkdownV2 code span
func EscapeCode(text string) string {
	return strings.NewReplacer("\\", "\\\\", "`", "\\`").Replace(text)
}

func TruncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-1]) + "…"
}
