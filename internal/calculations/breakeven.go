package calculations

// MaxBreakEvenYears - верхняя граница поиска точки безубыточности
const MaxBreakEvenYears = 30

// FindBreakEven возвращает первый год, в котором чистая стоимость покупки
// не превышает чистую стоимость аренды. Если такого года нет, возвращается
// MaxBreakEvenYears.
func FindBreakEven(in Inputs) int {
	years, _ := BreakEven(in)
	return years
}

// BreakEven работает как FindBreakEven, но также сообщает, был ли найден
// год безубыточности. reached == false означает, что покупка не окупилась
// за MaxBreakEvenYears лет.
func BreakEven(in Inputs) (years int, reached bool) {
	for years := 1; years <= MaxBreakEvenYears; years++ {
		s := simulate(in, years, false)
		if s.NetBuyCost() <= s.NetRentCost() {
			return years, true
		}
	}
	return MaxBreakEvenYears, false
}
