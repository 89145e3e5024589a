package cache_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"

	"github.com/ezrec/mipsim/cache"
	"github.com/ezrec/mipsim/memory"
	"github.com/ezrec/mipsim/trace"
)

var _ = Describe("Cache", func() {
	var (
		mockCtrl *gomock.Controller
		backing  *MockBacking
		rec      *trace.Recorder
		c        *cache.Cache
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		backing = NewMockBacking(mockCtrl)
		rec = &trace.Recorder{}
		c = cache.NewCache(backing)
		c.Tracer = rec
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	Describe("Read operations", func() {
		It("should miss on cold cache and fill from backing", func() {
			backing.EXPECT().Read(memory.Address(0x40)).Return(memory.Word(7))

			Expect(c.Read(0x40)).To(Equal(memory.Word(7)))
			Expect(rec.Kinds()).To(Equal([]trace.Kind{trace.KIND_MISS}))
			Expect(rec.Events[0].Address).To(Equal(memory.Address(0x40)))

			value, ok := c.Lookup(0x40)
			Expect(ok).To(BeTrue())
			Expect(value).To(Equal(memory.Word(7)))
		})

		It("should hit on the second read without consulting backing", func() {
			backing.EXPECT().Read(memory.Address(0x40)).Return(memory.Word(7)).Times(1)

			c.Read(0x40)
			Expect(c.Read(0x40)).To(Equal(memory.Word(7)))
			Expect(c.Read(0x40)).To(Equal(memory.Word(7)))

			Expect(rec.Kinds()).To(Equal([]trace.Kind{
				trace.KIND_MISS, trace.KIND_HIT, trace.KIND_HIT,
			}))
			Expect(rec.Events[1].Value).To(Equal(memory.Word(7)))

			stats := c.Stats()
			Expect(stats.Reads).To(Equal(3))
			Expect(stats.Misses).To(Equal(1))
			Expect(stats.Hits).To(Equal(2))
		})

		It("should fill with the backing default for unknown addresses", func() {
			backing.EXPECT().Read(memory.Address(12345)).Return(memory.Word(0))

			Expect(c.Read(12345)).To(Equal(memory.Word(0)))
			Expect(c.Len()).To(Equal(1))
		})
	})

	Describe("Write operations", func() {
		It("should write through and then hit", func() {
			backing.EXPECT().Write(memory.Address(100), memory.Word(42))

			c.Write(100, 42)

			Expect(c.Read(100)).To(Equal(memory.Word(42)))
			Expect(rec.Kinds()).To(Equal([]trace.Kind{trace.KIND_WRITE, trace.KIND_HIT}))

			stats := c.Stats()
			Expect(stats.Writes).To(Equal(1))
			Expect(stats.Hits).To(Equal(1))
			Expect(stats.Misses).To(Equal(0))
		})

		It("should propagate every write, even repeated ones", func() {
			gomock.InOrder(
				backing.EXPECT().Write(memory.Address(8), memory.Word(1)),
				backing.EXPECT().Write(memory.Address(8), memory.Word(2)),
			)

			c.Write(8, 1)
			c.Write(8, 2)

			value, ok := c.Lookup(8)
			Expect(ok).To(BeTrue())
			Expect(value).To(Equal(memory.Word(2)))
			Expect(c.Len()).To(Equal(1))
		})

		It("should replace a filled entry", func() {
			backing.EXPECT().Read(memory.Address(4)).Return(memory.Word(3))
			backing.EXPECT().Write(memory.Address(4), memory.Word(-9))

			c.Read(4)
			c.Write(4, -9)
			Expect(c.Read(4)).To(Equal(memory.Word(-9)))
		})
	})

	Describe("Bookkeeping", func() {
		It("should iterate entries in address order", func() {
			backing.EXPECT().Write(gomock.Any(), gomock.Any()).Times(3)

			c.Write(30, 3)
			c.Write(10, 1)
			c.Write(20, 2)

			var entries []cache.Entry
			for entry := range c.All() {
				entries = append(entries, entry)
			}
			Expect(entries).To(Equal([]cache.Entry{
				{Address: 10, Value: 1},
				{Address: 20, Value: 2},
				{Address: 30, Value: 3},
			}))
		})

		It("should forget entries on reset", func() {
			backing.EXPECT().Write(memory.Address(1), memory.Word(1))
			backing.EXPECT().Read(memory.Address(1)).Return(memory.Word(1))

			c.Write(1, 1)
			c.Reset()

			Expect(c.Len()).To(Equal(0))
			Expect(c.Stats()).To(Equal(cache.Statistics{}))

			_, ok := c.Lookup(1)
			Expect(ok).To(BeFalse())

			c.Read(1)
			Expect(c.Stats().Misses).To(Equal(1))
		})

		It("should not touch backing on lookup", func() {
			_, ok := c.Lookup(99)
			Expect(ok).To(BeFalse())
			Expect(rec.Events).To(BeEmpty())
		})
	})
})

var _ = Describe("Cache with memory", func() {
	var (
		mem *memory.Memory
		c   *cache.Cache
	)

	BeforeEach(func() {
		mem = memory.NewMemory()
		c = cache.NewCache(mem)
	})

	It("should write through to memory", func() {
		c.Write(100, 42)
		Expect(mem.Read(100)).To(Equal(memory.Word(42)))
		Expect(c.Backing()).To(BeIdenticalTo(mem))
	})

	It("should read preloaded memory", func() {
		mem.Write(0x10, 5)
		Expect(c.Read(0x10)).To(Equal(memory.Word(5)))
		Expect(mem.Reads).To(Equal(1))

		Expect(c.Read(0x10)).To(Equal(memory.Word(5)))
		Expect(mem.Reads).To(Equal(1))
	})

	It("should not see writes that bypass the cache once filled", func() {
		c.Read(0x10)
		mem.Write(0x10, 9)
		Expect(c.Read(0x10)).To(Equal(memory.Word(0)))
	})
})
