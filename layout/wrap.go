package layout

import "strings"

// Wrap 按空白把文本贪心地折成多行：追加单词前测量 当前行+单词+" "，
// 超出 maxWidth 且当前行非空时换行。单词内部从不拆分，过长的单词独占一行并溢出。
// maxWidth <= 0 或没有测量器时不折行。
func Wrap(text string, fontSizePt float64, fontFamily string, maxWidth float64, m Measurer) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if m == nil || maxWidth <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	var line strings.Builder // 每个单词后都带一个空格
	flush := func() {
		if line.Len() == 0 {
			return
		}
		lines = append(lines, strings.TrimSuffix(line.String(), " "))
		line.Reset()
	}
	for _, word := range words {
		candidate := line.String() + word + " "
		if line.Len() > 0 && m.Measure(candidate, fontSizePt, fontFamily) > maxWidth {
			flush()
		}
		line.WriteString(word)
		line.WriteByte(' ')
	}
	flush()
	return lines
}
