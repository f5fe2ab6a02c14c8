// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package workerpool

type worker[R any] struct {
	id        int
	queueCh   <-chan Task[R]
	resultsCh chan<- R
	errorsCh  chan<- error
}

func (w *worker[R]) start() {
	go func() {
		for task := range w.queueCh {
			if task == nil {
				var zero R
				w.resultsCh <- zero
				continue
			}

			data, err := task()
			if err != nil {
				w.errorsCh <- err
				continue
			}
			w.resultsCh <- data
		}
	}()
}
