package repository

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike は LIKE パターン中のワイルドカードをリテラルとして扱えるようにする。
// 併用するクエリ側で ESCAPE '\' を指定すること。
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
