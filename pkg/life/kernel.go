package life

// Kernel is a 3×3 weighting applied around each cell. Index [1][1] is the
// cell itself.
type Kernel [3][3]int

// LifeKernel sums the eight neighbours of a cell and ignores the cell.
var LifeKernel = Kernel{
	{1, 1, 1},
	{1, 0, 1},
	{1, 1, 1},
}

// Convolve returns, for every cell of g, the kernel-weighted sum of its 3×3
// neighbourhood with circular boundary handling. The result is row-major
// like the grid. The kernel is applied without flipping, which matches a
// true convolution for symmetric kernels such as LifeKernel.
func Convolve(g *Grid, k Kernel) []int {
	sums := make([]int, len(g.cells))
	convolveRows(g, k, sums, 0, g.n)
	return sums
}

// convolveRows fills sums for rows [lo, hi). Each non-zero kernel tap adds a
// whole wrapped row of the source in two contiguous runs.
func convolveRows(g *Grid, k Kernel, sums []int, lo, hi int) {
	n := g.n
	for y := lo; y < hi; y++ {
		dst := sums[y*n : (y+1)*n]
		for i := range dst {
			dst[i] = 0
		}
		for ky := 0; ky < 3; ky++ {
			sy := wrap(y+ky-1, n)
			src := g.cells[sy*n : (sy+1)*n]
			for kx := 0; kx < 3; kx++ {
				if w := k[ky][kx]; w != 0 {
					addShifted(dst, src, wrap(kx-1, n), w)
				}
			}
		}
	}
}

// addShifted performs dst[x] += w * src[(x+shift) mod n] for 0 <= shift < n.
func addShifted(dst []int, src []Cell, shift, w int) {
	n := len(dst)
	head := dst[:n-shift]
	for x, c := range src[shift:] {
		head[x] += w * int(c)
	}
	tail := dst[n-shift:]
	for x, c := range src[:shift] {
		tail[x] += w * int(c)
	}
}
