package failure_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/netres/config"
	"github.com/katalvlaran/netres/core"
	"github.com/katalvlaran/netres/dijkstra"
	"github.com/katalvlaran/netres/failure"
)

var _ = Describe("Analyzer", func() {
	var (
		g *core.Graph
		a *failure.Analyzer
	)

	newAnalyzer := func(opts ...failure.Option) *failure.Analyzer {
		an, err := failure.NewAnalyzer(g, opts...)
		Expect(err).NotTo(HaveOccurred())
		return an
	}

	Context("construction", func() {
		It("rejects a nil graph", func() {
			_, err := failure.NewAnalyzer(nil)
			Expect(err).To(MatchError(failure.ErrNilGraph))
		})

		It("rejects invalid failure settings", func() {
			g = chain("A", "B")
			bad := config.Default().Failure
			bad.CascadeThreshold = 0
			_, err := failure.NewAnalyzer(g, failure.WithConfig(bad))
			Expect(err).To(MatchError(config.ErrInvalidConfig))
		})

		It("starts from the stock thresholds", func() {
			g = chain("A", "B")
			opts := newAnalyzer().Options()
			Expect(opts.Failure.CascadeThreshold).To(Equal(0.3))
			Expect(opts.Failure.MaxCascadeRounds).To(Equal(10))
		})
	})

	Context("node failure on a five-node chain", func() {
		BeforeEach(func() {
			g = chain("0", "1", "2", "3", "4")
			a = newAnalyzer()
		})

		It("splits the chain when the middle node fails", func() {
			rep := a.AnalyzeNodeFailure("2")
			Expect(rep.Node).To(Equal("2"))
			Expect(rep.TotalPairs).To(Equal(12))
			Expect(rep.LostPairs).To(Equal(8))
			Expect(rep.ConnectivityLoss).To(BeNumerically("~", 66.6667, 1e-3))
			Expect(rep.IsolatedNodes).To(Equal([]string{"0", "1", "3", "4"}))
			Expect(rep.AffectedNodes).To(Equal([]string{"3", "4"}))
		})

		It("loses nothing when an end node fails", func() {
			rep := a.AnalyzeNodeFailure("0")
			Expect(rep.TotalPairs).To(Equal(12))
			Expect(rep.LostPairs).To(BeZero())
			Expect(rep.ConnectivityLoss).To(BeZero())
			Expect(rep.IsolatedNodes).To(BeEmpty())
			Expect(rep.AffectedNodes).To(BeEmpty())
		})

		It("reports the smaller side as affected", func() {
			rep := a.AnalyzeNodeFailure("1")
			Expect(rep.ConnectivityLoss).To(BeNumerically("~", 50, 1e-9))
			Expect(rep.AffectedNodes).To(Equal([]string{"0"}))
		})

		It("returns an empty report for an unknown node", func() {
			rep := a.AnalyzeNodeFailure("nope")
			Expect(rep).To(Equal(failure.NodeFailureReport{Node: "nope"}))
		})

		It("leaves the graph as it found it", func() {
			g.Disable("4")
			a.AnalyzeNodeFailure("2")
			a.AnalyzeNodeFailure("4")
			Expect(g.Disabled()).To(Equal([]string{"4"}))
			Expect(g.ActiveNeighbors("2")).To(HaveLen(2))
		})

		It("ranks critical nodes by loss", func() {
			top := a.CriticalNodes(2)
			Expect(top).To(HaveLen(2))
			Expect(top[0].Node).To(Equal("2"))
			Expect(top[1].Node).To(Equal("1"))
			Expect(a.CriticalNodes(0)).To(HaveLen(5))
		})
	})

	Context("node failure in a triangle", func() {
		It("keeps the other two connected", func() {
			g = core.NewGraph()
			Expect(g.AddEdge("0", "1", 1)).To(Succeed())
			Expect(g.AddEdge("0", "2", 1)).To(Succeed())
			Expect(g.AddEdge("1", "2", 1)).To(Succeed())
			rep := newAnalyzer().AnalyzeNodeFailure("0")
			Expect(rep.TotalPairs).To(Equal(2))
			Expect(rep.ConnectivityLoss).To(BeZero())
		})
	})

	Context("edge failure", func() {
		It("detours around a broken link in a ring", func() {
			g = chain("A", "B", "C", "D")
			Expect(g.AddEdge("D", "A", 1)).To(Succeed())
			rep := newAnalyzer().AnalyzeEdgeFailure("A", "B")

			Expect(rep.AffectedPairs).To(Equal([]core.Pair{{A: "A", B: "B"}, {A: "B", B: "A"}}))
			Expect(rep.LostPairs).To(BeEmpty())
			Expect(g.IsVulnerable("A", "B")).To(BeFalse())
		})

		It("loses every pair across a bridge", func() {
			g = chain("0", "1", "2", "3")
			rep := newAnalyzer().AnalyzeEdgeFailure("1", "2")
			Expect(rep.AffectedPairs).To(BeEmpty())
			Expect(rep.LostPairs).To(HaveLen(8))
			Expect(rep.LostPairs).To(ContainElement(core.Pair{A: "3", B: "0"}))
		})

		It("keeps an existing vulnerability mark", func() {
			g = chain("0", "1", "2")
			g.MarkVulnerable("0", "1")
			rep := newAnalyzer().AnalyzeEdgeFailure("0", "1")
			Expect(rep.LostPairs).To(BeEmpty())
			Expect(g.IsVulnerable("0", "1")).To(BeTrue())
		})

		It("ignores a missing edge", func() {
			g = chain("0", "1", "2")
			rep := newAnalyzer().AnalyzeEdgeFailure("0", "2")
			Expect(rep).To(Equal(failure.EdgeFailureReport{From: "0", To: "2"}))
		})
	})

	Context("path reliability", func() {
		BeforeEach(func() {
			g = chain("0", "1", "2", "3")
			a = newAnalyzer()
		})

		It("multiplies nominal edges", func() {
			Expect(a.PathReliability([]string{"0", "1", "2", "3"})).To(BeNumerically("~", 0.857375, 1e-12))
		})

		It("penalises vulnerable edges", func() {
			g.MarkVulnerable("0", "1")
			Expect(a.PathReliability([]string{"0", "1", "2"})).To(BeNumerically("~", 0.665, 1e-12))
		})

		It("treats trivial paths as certain", func() {
			Expect(a.PathReliability(nil)).To(Equal(1.0))
			Expect(a.PathReliability([]string{"0"})).To(Equal(1.0))
		})

		It("uses configured reliabilities", func() {
			f := config.Default().Failure
			f.NominalReliability = 0.5
			a = newAnalyzer(failure.WithConfig(f), failure.WithRouting(dijkstra.WithHeap()))
			Expect(a.PathReliability([]string{"0", "1", "2"})).To(Equal(0.25))
		})
	})
})
