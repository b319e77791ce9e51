package models

// RepoContext es la foto de solo lectura del repositorio que consumen los
// checks. Una vez construida no se modifica durante la evaluación, por lo que
// puede compartirse entre checks concurrentes sin locks.
type RepoContext struct {
	// Path es la ruta absoluta a la raíz del repositorio.
	Path string `json:"path"`
	// RootFiles son los nombres de las entradas en la raíz del repositorio.
	RootFiles []string `json:"root_files"`
	// Manifest es el manifiesto raíz parseado (package.json o go.mod), o nil.
	Manifest *Manifest `json:"manifest,omitempty"`
	// Apps son las unidades de aplicación detectadas.
	Apps []AppUnit `json:"apps"`
	// Monorepo indica si el repositorio contiene más de una unidad de
	// aplicación o declara workspaces.
	Monorepo bool `json:"monorepo"`
}

// HasRootFile indica si alguno de los nombres existe en la raíz del
// repositorio.
func (rc *RepoContext) HasRootFile(names ...string) (string, bool) {
	for _, name := range names {
		for _, f := range rc.RootFiles {
			if f == name {
				return name, true
			}
		}
	}
	return "", false
}

// Manifest es la vista normalizada del manifiesto de un proyecto,
// independiente del gestor de paquetes.
type Manifest struct {
	// Kind identifica el formato de origen: "package.json" o "go.mod".
	Kind            string            `json:"kind"`
	Name            string            `json:"name"`
	Scripts         map[string]string `json:"scripts,omitempty"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"dev_dependencies,omitempty"`
	// Workspaces son los patrones de workspaces declarados (npm/pnpm) o los
	// directorios de un go.work.
	Workspaces []string `json:"workspaces,omitempty"`
	// Engines es la restricción de runtime declarada (engines.node, directiva
	// go), si existe.
	Engines map[string]string `json:"engines,omitempty"`
}

// HasScript indica si el manifiesto declara un script con ese nombre.
func (m *Manifest) HasScript(name string) bool {
	if m == nil {
		return false
	}
	_, ok := m.Scripts[name]
	return ok
}

// HasDependency busca el paquete entre dependencias y devDependencies.
func (m *Manifest) HasDependency(name string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.Dependencies[name]; ok {
		return true
	}
	_, ok := m.DevDependencies[name]
	return ok
}

// AppUnit es una unidad de aplicación dentro del repositorio (un workspace,
// un directorio bajo apps/, un cmd/ en Go, etc.).
type AppUnit struct {
	Name string `json:"name"`
	// Path es la ruta relativa a la raíz del repositorio.
	Path string `json:"path"`
	// Manifest es el manifiesto propio de la unidad, o nil.
	Manifest *Manifest `json:"manifest,omitempty"`
	// Files son las rutas relativas a la unidad de los archivos que contiene.
	Files []string `json:"files,omitempty"`
}
