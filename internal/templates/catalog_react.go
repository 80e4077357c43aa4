package templates

import "github.com/opmodel/scaffold/internal/project"

// Logical identities shared by the JavaScript kinds.
const (
	idManifest    FileID = "manifest"
	idAppEntry    FileID = "app-entry"
	idGitignore   FileID = "gitignore"
	idReadme      FileID = "readme"
	idTSConfig    FileID = "tsconfig"
	idMainEntry   FileID = "main-entry"
	idIndexHTML   FileID = "index-html"
	idViteConfig  FileID = "vite-config"
	idAppStyles   FileID = "app-styles"
	idIndexStyles FileID = "index-styles"
	idTSNode      FileID = "tsconfig-node"
	idViteEnv     FileID = "vite-env"
	idTestConfig  FileID = "test-config"
	idTestSetup   FileID = "test-setup"
	idSampleTest  FileID = "sample-test"
)

var typeScriptExts = map[string]string{
	".jsx": ".tsx",
	".js":  ".ts",
}

func reactDef() kindDef {
	return kindDef{
		info: Info{
			Kind:        project.React,
			Description: "React web application built with Vite",
			UseCase:     "Single-page web apps and component libraries",
			Flags: []FlagInfo{
				{Name: project.FlagTypeScript, Description: "Use TypeScript (.tsx sources, tsconfig)", Default: "false"},
				{Name: project.FlagTesting, Description: "Add Vitest and Testing Library with a sample test", Default: "false"},
			},
		},
		base: []entry{
			dir("src", "Application sources"),
			dir("src/components", "Reusable components"),
			dir("src/hooks", "Custom hooks"),
			dir("src/utils", "Helpers"),
			dir("src/types", "Shared types"),
			dir("public", "Static assets"),
			dir(".vscode", "Editor settings"),
			file(idManifest, "package.json", "react/package.json.tmpl", "Package manifest"),
			file(idIndexHTML, "index.html", "react/index.html.tmpl", "HTML entry point"),
			file(idViteConfig, "vite.config.js", "react/vite.config.js", "Vite configuration"),
			file(idAppEntry, "src/App.jsx", "react/App.jsx.tmpl", "Root component"),
			file(idMainEntry, "src/main.jsx", "react/main.jsx.tmpl", "Application entry point"),
			file(idAppStyles, "src/App.css", "react/App.css", "Component styles"),
			file(idIndexStyles, "src/index.css", "react/index.css", "Global styles"),
			file(idGitignore, ".gitignore", "react/gitignore.tmpl", "Git ignore rules"),
			file(idReadme, "README.md", "react/README.md.tmpl", "Project readme"),
		},
		layers: []layerDef{
			{
				name: "testing",
				when: func(o project.Options) bool { return o.(project.ReactOptions).Testing },
				add: []entry{
					file(idTestConfig, "vitest.config.js", "react/vitest.config.js.tmpl", "Vitest configuration"),
					file(idTestSetup, "src/setupTests.js", "react/setupTests.js", "Test setup"),
					file(idSampleTest, "src/App.test.jsx", "react/App.test.jsx", "Sample test"),
				},
			},
			{
				name: "typescript",
				when: func(o project.Options) bool { return o.(project.ReactOptions).TypeScript },
				swap: &extSwap{
					ids:  []FileID{idViteConfig, idAppEntry, idMainEntry, idTestConfig, idTestSetup, idSampleTest},
					exts: typeScriptExts,
				},
				add: []entry{
					file(idTSConfig, "tsconfig.json", "react/tsconfig.json", "TypeScript configuration"),
					file(idTSNode, "tsconfig.node.json", "react/tsconfig.node.json.tmpl", "TypeScript config for tooling"),
					file(idViteEnv, "src/vite-env.d.ts", "react/vite-env.d.ts.tmpl", "Vite type declarations"),
				},
			},
		},
		nextSteps: func(name string, opts project.Options) []string {
			steps := []string{"cd " + name, "npm install", "npm run dev"}
			if opts.(project.ReactOptions).Testing {
				steps = append(steps, "npm test")
			}
			return steps
		},
	}
}
