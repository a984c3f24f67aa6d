package mesh

import "github.com/sarchlab/ume/ds"

// Iotas is the optional tetrahedral-subdivision entity family. No derived
// kernel in this module consumes it; it carries only its five raw
// connectivity maps and is otherwise a full Entity like any other family.
// A mesh only allocates one via Mesh.EnableIotas.
type Iotas struct {
	*Entity
}

func newIotas(m *Mesh) *Iotas {
	a := &Iotas{Entity: NewEntity("iotas", m, m.Root)}
	for _, name := range []string{"m:a>z", "m:a>f", "m:a>p", "m:a>e", "m:a>s"} {
		a.DS.Insert(name, ds.NewRaw(ds.KindIntV))
	}
	return a
}

func (a *Iotas) Z() *[]int { return a.DS.AccessIntV("m:a>z") }
func (a *Iotas) F() *[]int { return a.DS.AccessIntV("m:a>f") }
func (a *Iotas) P() *[]int { return a.DS.AccessIntV("m:a>p") }
func (a *Iotas) E() *[]int { return a.DS.AccessIntV("m:a>e") }
func (a *Iotas) S() *[]int { return a.DS.AccessIntV("m:a>s") }
