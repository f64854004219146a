package graphemes

import "testing"

func TestNextClusterSizeSingletons(t *testing.T) {
	cls := []Class{Any, Any, Any}
	for start, want := range []int{1, 1, 1} {
		if n := nextClusterSize(cls, start); n != want {
			t.Errorf("cluster at %d should have size %d, has %d", start, want, n)
		}
	}
}

func TestNextClusterSizeCRLF(t *testing.T) {
	cls := []Class{CRClass, LFClass, Any}
	if n := nextClusterSize(cls, 0); n != 2 {
		t.Errorf("CR LF should form one cluster of size 2, has %d", n)
	}
	if n := nextClusterSize(cls, 2); n != 1 {
		t.Errorf("cluster after CR LF should have size 1, has %d", n)
	}
	// LF CR is two clusters
	if n := nextClusterSize([]Class{LFClass, CRClass}, 0); n != 1 {
		t.Errorf("LF CR should break apart, cluster has size %d", n)
	}
}

func TestNextClusterSizeControl(t *testing.T) {
	cls := []Class{Any, ControlClass, Any}
	if n := nextClusterSize(cls, 0); n != 1 {
		t.Errorf("control must not glue to predecessor, cluster has size %d", n)
	}
	if n := nextClusterSize(cls, 1); n != 1 {
		t.Errorf("control must not glue to successor, cluster has size %d", n)
	}
	// GB9 does not apply after Control
	cls = []Class{ControlClass, ExtendClass}
	if n := nextClusterSize(cls, 0); n != 1 {
		t.Errorf("extend must not glue to control, cluster has size %d", n)
	}
}

func TestNextClusterSizeHangul(t *testing.T) {
	inputs := []struct {
		cls  []Class
		size int
	}{
		{[]Class{LClass, LClass, VClass, TClass}, 4},
		{[]Class{LVClass, TClass}, 2},
		{[]Class{LVTClass, TClass, TClass}, 3},
		{[]Class{TClass, LClass}, 1},
		{[]Class{VClass, LClass}, 1},
	}
	for _, input := range inputs {
		if n := nextClusterSize(input.cls, 0); n != input.size {
			t.Errorf("hangul cluster %v should have size %d, has %d",
				input.cls, input.size, n)
		}
	}
}

func TestNextClusterSizeExtendAndPrepend(t *testing.T) {
	cls := []Class{PrependClass, Any, ExtendClass, ExtendClass, Any}
	if n := nextClusterSize(cls, 0); n != 4 {
		t.Errorf("prepend + base + extends should give size 4, has %d", n)
	}
	cls = []Class{Any, SpacingMarkClass, Any}
	if n := nextClusterSize(cls, 0); n != 2 {
		t.Errorf("spacing mark should glue, cluster has size %d", n)
	}
}

func TestNextClusterSizeEmojiZWJ(t *testing.T) {
	pict := Extended_PictographicClass
	cls := []Class{pict, ExtendClass, ZWJClass, pict, ZWJClass, pict, Any}
	if n := nextClusterSize(cls, 0); n != 6 {
		t.Errorf("emoji zwj sequence should give size 6, has %d", n)
	}
	// without a leading pictograph, ZWJ + pictograph breaks off
	cls = []Class{Any, ZWJClass, pict}
	if n := nextClusterSize(cls, 0); n != 2 {
		t.Errorf("zwj glues but pictograph breaks off, cluster has size %d", n)
	}
}

func TestNextClusterSizeRegionalIndicators(t *testing.T) {
	ri := Regional_IndicatorClass
	cls := []Class{ri, ri, ri, ri, ri}
	sizes := []int{}
	for at := 0; at < len(cls); {
		n := nextClusterSize(cls, at)
		sizes = append(sizes, n)
		at += n
	}
	if len(sizes) != 3 || sizes[0] != 2 || sizes[1] != 2 || sizes[2] != 1 {
		t.Errorf("five RIs should cluster as 2+2+1, have %v", sizes)
	}
}

func TestNextClusterSizeEndOfText(t *testing.T) {
	cls := []Class{Any, ExtendClass, ExtendClass}
	if n := nextClusterSize(cls, 0); n != 3 {
		t.Errorf("cluster running to end of text should have size 3, has %d", n)
	}
	if n := nextClusterSize(cls, 2); n != 1 {
		t.Errorf("last position should give size 1, has %d", n)
	}
}
