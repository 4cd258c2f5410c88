// Package search строит предикат полнотекстового поиска по инвентарям.
// Совпадение — регистронезависимая подстрока хотя бы в одном из полей:
// title, description, category, теги и пользовательские поля
// (строковые/текстовые/ссылки/dropdown как текст, числа — через их
// строковое представление). Булевы поля не участвуют.
package search

import (
	"strconv"
	"strings"

	"github.com/shahedzaman612/Inventory-Backend/internal/model"
)

// Limit — максимум результатов поиска; порядок хранения, без ранжирования.
const Limit = 20

// Matcher — скомпилированный предикат для одного запроса.
type Matcher struct {
	needle string
}

// NewMatcher нормализует текст запроса. Пустой (или из одних пробелов)
// запрос не матчит ничего: search("") — это пустой результат, а не "все".
func NewMatcher(query string) Matcher {
	return Matcher{needle: strings.ToLower(strings.TrimSpace(query))}
}

// Empty — запрос пуст, поиск не имеет смысла.
func (m Matcher) Empty() bool { return m.needle == "" }

// Matches — OR по всем искомым полям инвентаря.
func (m Matcher) Matches(inv *model.Inventory) bool {
	if m.Empty() {
		return false
	}
	if m.contains(inv.Title) || m.contains(inv.Description) || m.contains(inv.Category) {
		return true
	}
	for _, t := range inv.Tags {
		if m.contains(t) {
			return true
		}
	}
	cf := inv.CustomFields
	for _, bucket := range [][]string{cf.StringFields, cf.TextFields, cf.LinkFields, cf.DropdownFields} {
		for _, v := range bucket {
			if m.contains(v) {
				return true
			}
		}
	}
	for _, n := range cf.NumberFields {
		if m.contains(strconv.FormatFloat(n, 'f', -1, 64)) {
			return true
		}
	}
	return false
}

func (m Matcher) contains(field string) bool {
	return strings.Contains(strings.ToLower(field), m.needle)
}
