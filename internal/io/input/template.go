package input

import (
	"fmt"
	"os"
	"path/filepath"
)

// template is a documented starter input file. It validates as-is so
// users only have to replace paths and selections.
const template = `# Analysis input file for lipid order-parameter calculation.
# This file was auto-generated. Edit as needed.

# Input files. Trajectory may also be a list of files read back to back.
structure: system.tpr
trajectory: md.xtc
index: index.ndx

# Type of order parameters to calculate:
#   !AAOrder (atomistic), !CGOrder (coarse-grained), !UAOrder (united-atom)
type: !AAOrder
  heavy_atoms: "@membrane and element name carbon"
  hydrogens: "@membrane and element name hydrogen"

# Main results file. Optional: output_tab, output_xvg, output_csv.
output: order.yaml

# Direction of the membrane normal: x, y, z, !Dynamic or !FromFile.
membrane_normal: z

# Part of the trajectory to analyze, in ps. Step means every Nth frame.
begin: 0
end: .inf
step: 1

# Assignment of lipids to leaflets (optional):
#   !Global, !Local, !Individual, !Clustering, !FromFile, !FromNdx
#leaflets: !Global
#  membrane: "@membrane"
#  heads: "name P"
#  frequency: !Once

# Region of the membrane to analyze (optional):
#   !Cuboid, !Cylinder, !Sphere
#geometry: !Cylinder
#  reference: !Center
#  radius: 4.5
#  span: [-.inf, .inf]
#  orientation: z

# Error estimation using block averaging (optional).
#estimate_error:
#  n_blocks: 5

# Spatial maps of order parameters (optional).
#map:
#  output_directory: ordermaps
#  bin_size: [0.1, 0.1]

# Other options.
min_samples: 1
n_threads: 1
overwrite: false
silent: false
handle_pbc: true
`

// GenerateTemplate writes a documented example input file to path.
// Existing files are not overwritten unless force is set.
func GenerateTemplate(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("file already exists at %s (use --force to overwrite)", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(template), 0644); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	return nil
}
