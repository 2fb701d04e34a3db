package find_assignment

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
)

// candidate один вариант посадки: одиночный стол или комбинация
type candidate struct {
	tableIDs      []uuid.UUID
	capacity      int
	isCombination bool
	sortKey       string // ID стола/комбинации для детерминированного порядка при равной вместимости
}

// buildCandidates собирает кандидатов, способных вместить компанию:
// сначала все подходящие одиночные столы, затем все подходящие комбинации
// Внутри каждой группы порядок: вместимость по возрастанию (минимум потерь
// мест), при равенстве — по ID. Порядок тотальный, подбор детерминирован
func buildCandidates(tables []*domain.Table, combos []*domain.TableCombination, partySize int) (singles, combinations []candidate) {
	singles = make([]candidate, 0)
	for _, t := range tables {
		if !t.FitsParty(partySize) {
			continue
		}
		singles = append(singles, candidate{
			tableIDs: []uuid.UUID{t.ID},
			capacity: t.EffectiveMaxCapacity(),
			sortKey:  t.ID.String(),
		})
	}

	combinations = make([]candidate, 0)
	for _, c := range combos {
		if !c.FitsParty(partySize) {
			continue
		}
		combinations = append(combinations, candidate{
			tableIDs:      c.TableIDs(),
			capacity:      c.CombinedCapacity,
			isCombination: true,
			sortKey:       c.ID.String(),
		})
	}

	sortCandidates(singles)
	sortCandidates(combinations)

	return singles, combinations
}

func sortCandidates(cands []candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].capacity != cands[j].capacity {
			return cands[i].capacity < cands[j].capacity
		}
		return cands[i].sortKey < cands[j].sortKey
	})
}

// isFree проверяет, что ни один стол кандидата не занят пересекающимся
// бронированием. Полуоткрытые интервалы: граничащие посадки не конфликтуют
func isFree(cand candidate, start time.Time, durationMinutes int, reservations []*domain.Reservation, exclude *uuid.UUID) bool {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	for _, res := range reservations {
		if exclude != nil && res.ID == *exclude {
			continue
		}
		if !res.IsOccupying() {
			continue
		}
		if !res.Overlaps(start, end) {
			continue
		}
		for _, tableID := range cand.tableIDs {
			if res.OccupiesTable(tableID) {
				return false
			}
		}
	}

	return true
}

// allTableIDs возвращает идентификаторы всех активных столов ресторана
func allTableIDs(tables []*domain.Table) []uuid.UUID {
	ids := make([]uuid.UUID, len(tables))
	for i, t := range tables {
		ids[i] = t.ID
	}
	return ids
}
