package ds_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ume/ds"
	"github.com/sarchlab/ume/fault"
)

var _ = Describe("DS", func() {
	It("returns a raw entry's zero value before any write", func() {
		d := ds.NewRoot("root")
		d.Insert("x", ds.NewRaw(ds.KindInt))
		Expect(d.CaccessInt("x")).To(Equal(0))
	})

	It("runs a computed entry's Init exactly once across repeated access", func() {
		d := ds.NewRoot("root")
		calls := 0
		d.Insert("y", ds.NewComputed(ds.KindInt, func(e *ds.Entry) error {
			calls++
			return nil
		}))
		_ = d.CaccessInt("y")
		_ = d.CaccessInt("y")
		_ = d.CaccessInt("y")
		Expect(calls).To(Equal(1))
	})

	It("reports Initialized state only after the first successful access", func() {
		d := ds.NewRoot("root")
		entry := ds.NewComputed(ds.KindInt, func(e *ds.Entry) error { return nil })
		d.Insert("z", entry)
		Expect(entry.State()).To(Equal(ds.NotInitialized))
		d.CaccessInt("z")
		Expect(entry.State()).To(Equal(ds.Initialized))
	})

	It("re-runs Init after Release", func() {
		d := ds.NewRoot("root")
		calls := 0
		d.Insert("w", ds.NewComputed(ds.KindInt, func(e *ds.Entry) error {
			calls++
			return nil
		}))
		d.CaccessInt("w")
		d.Release("w")
		d.CaccessInt("w")
		Expect(calls).To(Equal(2))
	})

	It("falls through to a parent store for names not defined locally", func() {
		root := ds.NewRoot("root")
		root.Insert("shared", ds.NewRaw(ds.KindInt))
		*root.AccessInt("shared") = 7

		child := ds.NewChild("child", root)
		Expect(child.CaccessInt("shared")).To(Equal(7))
	})

	It("shadows a parent entry with a same-named local one", func() {
		root := ds.NewRoot("root")
		root.Insert("shared", ds.NewRaw(ds.KindInt))
		*root.AccessInt("shared") = 7

		child := ds.NewChild("child", root)
		child.Insert("shared", ds.NewRaw(ds.KindInt))
		*child.AccessInt("shared") = 9

		Expect(child.CaccessInt("shared")).To(Equal(9))
		Expect(root.CaccessInt("shared")).To(Equal(7))
	})

	It("stops walking up once Close severs the parent link", func() {
		root := ds.NewRoot("root")
		root.Insert("shared", ds.NewRaw(ds.KindInt))

		child := ds.NewChild("child", root)
		Expect(child.Find("shared")).NotTo(BeNil())

		child.Close()
		Expect(child.Find("shared")).To(BeNil())
	})

	It("aborts on a re-entrant access while a computed entry is still initializing", func() {
		d := ds.NewRoot("root")

		orig := fault.Exit
		defer func() {
			fault.Exit = orig
			recover()
		}()
		aborted := false
		fault.Exit = func(code int) {
			aborted = true
			panic("fault.Exit called") // unwind the re-entrant Init instead of recursing forever
		}

		d.Insert("cyclic", ds.NewComputed(ds.KindInt, func(e *ds.Entry) error {
			d.CaccessInt("cyclic")
			return nil
		}))
		Expect(func() { d.CaccessInt("cyclic") }).To(PanicWith("fault.Exit called"))

		Expect(aborted).To(BeTrue())
	})

	It("stores and retrieves a ragged int entry through Mydata/Access", func() {
		d := ds.NewRoot("root")
		d.Insert("rr", ds.NewComputed(ds.KindIntRR, func(e *ds.Entry) error {
			rr := ds.MydataIntRR(e)
			rr.Init(2)
			rr.Assign(0, []int{1, 2})
			rr.Assign(1, []int{3})
			return nil
		}))
		rr := d.AccessIntRR("rr")
		Expect(rr.Row(0)).To(Equal([]int{1, 2}))
		Expect(rr.Row(1)).To(Equal([]int{3}))
	})
})
