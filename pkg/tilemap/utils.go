// pkg/tilemap/utils.go
package tilemap

// Вспомогательные функции
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
