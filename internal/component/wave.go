package component

import "go-tower-siege/internal/defs"

// Wave — состояние текущей волны
type Wave struct {
	Number         int               // Номер волны, начиная с 1
	EnemiesToSpawn int               // Сколько врагов ещё появится
	SpawnTimer     float64           // Время до следующего появления
	SpawnInterval  float64           // Интервал между появлениями
	Entries        []defs.SpawnEntry // Таблица выбора врагов
}
