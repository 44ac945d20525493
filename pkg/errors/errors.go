package errors

import "errors"

// ErrOptimisticLock conflito de lock otimista: o registro foi alterado por outra operação
var ErrOptimisticLock = errors.New("registro alterado por outra operação, recarregue e tente novamente")
