// Package render draws a parsed maze and a set of highlighted cells as a
// raster image, using github.com/fogleman/gg for the 2D drawing.
//
// Every grid cell becomes a Scale×Scale square: walls and floor in their
// palette colors, highlighted cells (typically maze.Solution.Cells) on top,
// and filled circles for the start and end markers.
//
//	sol, _ := maze.SolveMaze(mz)
//	f, _ := os.Create("best-seats.png")
//	defer f.Close()
//	_ = render.PNG(f, mz, sol.Cells.Sorted(), render.WithScale(12))
package render
