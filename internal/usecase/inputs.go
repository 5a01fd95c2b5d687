package usecase

import (
	"smartpay/internal/domain/entity"
	"smartpay/internal/domain/repository"
)

// patchBuilder collects the fields a client actually sent.
type patchBuilder repository.Patch

func newPatch() patchBuilder {
	return patchBuilder{}
}

func (p patchBuilder) build() repository.Patch {
	return repository.Patch(p)
}

func set[T any](p patchBuilder, column string, field entity.Optional[T]) {
	if field.Set {
		p[column] = field.ValueOrNil()
	}
}
