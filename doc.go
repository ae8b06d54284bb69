/*
 * doc.go, part of hubbardv.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*
Package hubbard is the main package of hubbardv. It provides the atom and structure types,
the reader for Quantum Espresso structure files and the errors shared by all the packages
in the module.

hubbardv assigns pre-computed inter-site Hubbard V values to the metal-ligand pairs of a
periodic crystal. For each metal atom of a given valence class (Fe2 and Fe3 by default),
the 8 nearest ligands (O by default) are found under periodic boundary conditions, and
the ith closest ligand gets the ith value of the class' value table.

	**Packages**

	v3: Nx3 coordinate matrices, on top of gonum's mat.Dense.

	pbc: crystal cells, fractional to cartesian conversion and minimum-image distances.

	neighbors: ranking of ligands around a reference atom.

	assign: value tables, the output records and the complete pipeline (Run).

	distplot: histograms of the selected metal-ligand distances.

The command cmd/hubbardv exposes the pipeline as a command line program.

	**Structure files**

Only the CELL_PARAMETERS and ATOMIC_POSITIONS cards of the Quantum Espresso input
format are read. The cell must be given in angstrom or bohr, and the positions in
crystal (fractional) coordinates. If the &SYSTEM namelist declares nat, exactly that
many atoms are read. Otherwise the positions block ends at the first line with fewer than
4 fields. Files ending in .zst or .gz are decompressed transparently.
*/
package hubbard
