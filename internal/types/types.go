// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в ECS.
// Ноль зарезервирован под "нет сущности".
type EntityID uint64
