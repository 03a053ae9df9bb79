package failure_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/netres/config"
	"github.com/katalvlaran/netres/core"
	"github.com/katalvlaran/netres/dijkstra"
	"github.com/katalvlaran/netres/failure"
)

var _ = Describe("SimulateCascade", func() {
	var g *core.Graph

	analyzer := func(opts ...failure.Option) *failure.Analyzer {
		a, err := failure.NewAnalyzer(g, opts...)
		Expect(err).NotTo(HaveOccurred())
		return a
	}

	Context("when the hub of a star fails", func() {
		BeforeEach(func() {
			g = core.NewGraph()
			for _, leaf := range []string{"1", "2", "3", "4"} {
				Expect(g.AddEdge("0", leaf, 1)).To(Succeed())
			}
		})

		It("keeps routing through the failed hub by default", func() {
			rep := analyzer().SimulateCascade([]string{"0"})

			Expect(rep.Seeds).To(Equal([]string{"0"}))
			Expect(rep.TotalFailed).To(Equal([]string{"0"}))
			Expect(rep.Rounds).To(BeZero())
			Expect(rep.Phases).To(BeEmpty())
		})

		It("collapses when failed nodes are isolated", func() {
			f := config.Default().Failure
			f.IsolateFailed = true
			rep := analyzer(failure.WithConfig(f)).SimulateCascade([]string{"0"})

			Expect(rep.TotalFailed).To(Equal([]string{"0", "1", "2", "3", "4"}))
			Expect(rep.Rounds).To(Equal(1))
			Expect(rep.Truncated).To(BeFalse())
			Expect(rep.Phases).To(Equal([]failure.CascadePhase{{
				Round:            1,
				NewlyFailed:      []string{"1", "2", "3", "4"},
				TotalFailedSoFar: []string{"0", "1", "2", "3", "4"},
			}}))
			Expect(g.Disabled()).To(BeEmpty())
		})
	})

	It("leaves already disabled nodes out of the count", func() {
		g = chain("A", "B", "C", "D")
		g.Disable("D")
		rep := analyzer().SimulateCascade([]string{"B"})

		// A still reaches C through B; D is neither evaluated nor counted.
		Expect(rep.TotalFailed).To(Equal([]string{"B"}))
		Expect(g.Disabled()).To(Equal([]string{"D"}))
	})

	It("stops at once when survivors stay well connected", func() {
		g = chain("A", "B", "C", "D", "E")
		rep := analyzer().SimulateCascade([]string{"C"})
		Expect(rep.TotalFailed).To(Equal([]string{"C"}))
		Expect(rep.Phases).To(BeEmpty())
		Expect(rep.Rounds).To(BeZero())
	})

	It("keeps duplicate and unknown seeds out of the propagation", func() {
		g = chain("A", "B", "C")
		rep := analyzer().SimulateCascade([]string{"X", "X", "A"})
		Expect(rep.Seeds).To(Equal([]string{"X", "A"}))
		Expect(rep.TotalFailed).To(HaveLen(2))
	})

	for _, isolate := range []bool{false, true} {
		Context(fmt.Sprintf("with a one-hop routing budget on a seven-node chain (isolate=%v)", isolate), func() {
			var f config.Failure

			BeforeEach(func() {
				g = chain("A", "B", "C", "D", "E", "F", "G")
				f = config.Default().Failure
				f.IsolateFailed = isolate
			})

			It("spreads over two rounds", func() {
				rep := analyzer(
					failure.WithConfig(f),
					failure.WithRouting(dijkstra.WithMaxDistance(1)),
				).SimulateCascade([]string{"D"})

				Expect(rep.Rounds).To(Equal(2))
				Expect(rep.Phases[0].NewlyFailed).To(Equal([]string{"A", "C", "E", "G"}))
				Expect(rep.Phases[1].NewlyFailed).To(Equal([]string{"B", "F"}))
				Expect(rep.TotalFailed).To(Equal([]string{"D", "A", "C", "E", "G", "B", "F"}))
				Expect(rep.Truncated).To(BeFalse())
			})

			It("flags truncation at the round ceiling", func() {
				f.MaxCascadeRounds = 1
				rep := analyzer(
					failure.WithConfig(f),
					failure.WithRouting(dijkstra.WithMaxDistance(1)),
				).SimulateCascade([]string{"D"})

				Expect(rep.Rounds).To(Equal(1))
				Expect(rep.Truncated).To(BeTrue())
				Expect(rep.TotalFailed).To(Equal([]string{"D", "A", "C", "E", "G"}))
				Expect(g.Disabled()).To(BeEmpty())
			})
		})
	}

	It("routes through failed nodes only in the default mode", func() {
		// A-B-C-D-E with a two-hop budget: through B, A still reaches C
		// (one of three live peers); with B isolated A reaches nobody.
		g = chain("A", "B", "C", "D", "E")
		routing := failure.WithRouting(dijkstra.WithMaxDistance(2))
		f := config.Default().Failure

		rep := analyzer(failure.WithConfig(f), routing).SimulateCascade([]string{"B"})
		Expect(rep.TotalFailed).To(Equal([]string{"B"}))

		f.IsolateFailed = true
		rep = analyzer(failure.WithConfig(f), routing).SimulateCascade([]string{"B"})
		Expect(rep.TotalFailed).To(Equal([]string{"B", "A"}))
		Expect(rep.Rounds).To(Equal(1))
		Expect(g.Disabled()).To(BeEmpty())
	})

	It("terminates on a dense graph and always includes the seeds", func() {
		g = core.NewGraph()
		ids := []string{"a", "b", "c", "d", "e", "f"}
		for i := range ids {
			for j := i + 1; j < len(ids); j++ {
				Expect(g.AddEdge(ids[i], ids[j], float64(i+j+1))).To(Succeed())
			}
		}
		f := config.Default().Failure
		f.CascadeThreshold = 1
		rep := analyzer(failure.WithConfig(f)).SimulateCascade([]string{"a", "b"})

		Expect(rep.Rounds).To(BeNumerically("<=", f.MaxCascadeRounds))
		Expect(rep.TotalFailed[:2]).To(Equal([]string{"a", "b"}))
	})
})
