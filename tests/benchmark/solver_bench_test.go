// Package benchmark measures solver and engine throughput on synthetic
// networks of increasing size, generating each graph once per size and
// timing repeated solves against it.
package benchmark

import (
	"context"
	"fmt"
	"testing"

	"logistics/pkg/costkernel"
	"logistics/pkg/domain"
	"logistics/pkg/engine"
	"logistics/pkg/solver"
)

func generateLinearNetwork(nodes int) *domain.Store {
	s := domain.NewStore()
	for i := 1; i <= nodes; i++ {
		s.AddNode(&domain.Node{ID: fmt.Sprintf("n%d", i), Type: domain.NodeTypeHub})
	}
	for i := 1; i < nodes; i++ {
		s.AddEdge(&domain.Edge{
			ID: fmt.Sprintf("e%d-%d", i, i+1), Source: fmt.Sprintf("n%d", i), Target: fmt.Sprintf("n%d", i+1),
			Mode: domain.ModeRoad, Distance: 10, BaseTime: 10, BaseCost: 10,
			Capacity: 1000, Reliability: 0.95, CarbonEmissions: 0.1,
		})
	}
	return s
}

func generateGridNetwork(n int) *domain.Store {
	s := domain.NewStore()
	id := func(i, j int) string { return fmt.Sprintf("n%d_%d", i, j) }

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s.AddNode(&domain.Node{ID: id(i, j), Type: domain.NodeTypeHub})
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j < n-1 {
				addGridEdge(s, id(i, j), id(i, j+1))
				addGridEdge(s, id(i, j+1), id(i, j))
			}
			if i < n-1 {
				addGridEdge(s, id(i, j), id(i+1, j))
				addGridEdge(s, id(i+1, j), id(i, j))
			}
		}
	}
	return s
}

func addGridEdge(s *domain.Store, from, to string) {
	s.AddEdge(&domain.Edge{
		ID: from + "-" + to, Source: from, Target: to,
		Mode: domain.ModeRoad, Distance: 5, BaseTime: 5, BaseCost: 5,
		Capacity: 1000, Reliability: 0.95, CarbonEmissions: 0.1,
	})
}

var benchWeights = costkernel.Weights{Cost: 0.4, Time: 0.6}

func BenchmarkSolve_AStar_Linear(b *testing.B) {
	for _, size := range []int{100, 1000, 5000} {
		b.Run(fmt.Sprintf("nodes_%d", size), func(b *testing.B) {
			s := generateLinearNetwork(size)
			cfg := solver.Config{Algorithm: solver.AlgorithmAStar, Weights: benchWeights}
			start, goal := "n1", fmt.Sprintf("n%d", size)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				solver.Solve(context.Background(), s, start, goal, cfg)
			}
		})
	}
}

func BenchmarkSolve_Dijkstra_Linear(b *testing.B) {
	for _, size := range []int{100, 1000, 5000} {
		b.Run(fmt.Sprintf("nodes_%d", size), func(b *testing.B) {
			s := generateLinearNetwork(size)
			start, goal := "n1", fmt.Sprintf("n%d", size)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				solver.Dijkstra(context.Background(), s, start, goal, benchWeights)
			}
		})
	}
}

func BenchmarkSolve_AStar_Grid(b *testing.B) {
	for _, n := range []int{10, 25, 50} {
		b.Run(fmt.Sprintf("grid_%dx%d", n, n), func(b *testing.B) {
			s := generateGridNetwork(n)
			cfg := solver.Config{Algorithm: solver.AlgorithmAStar, Weights: benchWeights}
			start, goal := "n0_0", fmt.Sprintf("n%d_%d", n-1, n-1)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				solver.Solve(context.Background(), s, start, goal, cfg)
			}
		})
	}
}

func BenchmarkSolve_Bidirectional_Grid(b *testing.B) {
	for _, n := range []int{10, 25, 50} {
		b.Run(fmt.Sprintf("grid_%dx%d", n, n), func(b *testing.B) {
			s := generateGridNetwork(n)
			cfg := solver.Config{Algorithm: solver.AlgorithmBidirectional, Weights: benchWeights}
			start, goal := "n0_0", fmt.Sprintf("n%d_%d", n-1, n-1)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				solver.Solve(context.Background(), s, start, goal, cfg)
			}
		})
	}
}

func BenchmarkEngine_Optimize(b *testing.B) {
	s := generateGridNetwork(25)
	e := engine.New(s, nil, nil)
	defer e.Shutdown(context.Background())
	cfg := engine.OptimizeConfig{Algorithm: solver.AlgorithmHybrid, Weights: benchWeights}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Optimize(context.Background(), "n0_0", "n24_24", nil, cfg)
	}
}

func BenchmarkEngine_Pareto(b *testing.B) {
	s := generateGridNetwork(10)
	e := engine.New(s, nil, nil)
	defer e.Shutdown(context.Background())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Pareto(context.Background(), "n0_0", "n9_9", nil)
	}
}
