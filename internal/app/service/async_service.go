package service

import (
	"context"
	"fmt"

	"employee-tracker/pkg/workerpool"
)

type AsyncService struct {
	Pool *workerpool.WorkerPool
}

func NewAsyncService(pool *workerpool.WorkerPool) *AsyncService {
	return &AsyncService{Pool: pool}
}

// SubmitAsync runs fn on the pool and waits for its result.
func (a *AsyncService) SubmitAsync(ctx context.Context, fn func(ctx context.Context) (any, error)) (any, error) {
	resCh := make(chan workerpool.Result, 1)
	err := a.Pool.Submit(ctx, workerpool.Task{
		Fn:      fn,
		ResultC: resCh,
	})
	if err != nil {
		return nil, err
	}
	select {
	case res := <-resCh:
		return res.Value, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Await is the typed form of SubmitAsync.
func Await[T any](ctx context.Context, a *AsyncService, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	v, err := a.SubmitAsync(ctx, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("async result: unexpected %T", v)
	}
	return out, nil
}
