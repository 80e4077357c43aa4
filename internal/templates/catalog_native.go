package templates

import "github.com/opmodel/scaffold/internal/project"

const (
	idAppConfig   FileID = "app-config"
	idIndexEntry  FileID = "index-entry"
	idBabelConfig FileID = "babel-config"
	idMetroConfig FileID = "metro-config"
	idNavigator   FileID = "navigator"
	idHomeScreen  FileID = "home-screen"
)

func reactNativeDef() kindDef {
	return kindDef{
		info: Info{
			Kind:        project.ReactNative,
			Description: "React Native mobile application",
			UseCase:     "iOS and Android apps from one JavaScript codebase",
			Flags: []FlagInfo{
				{Name: project.FlagTypeScript, Description: "Use TypeScript (.tsx sources, tsconfig)", Default: "false"},
				{Name: project.FlagNavigation, Description: "Add React Navigation with a stack navigator", Default: "false"},
			},
		},
		base: []entry{
			dir("src", "Application sources"),
			dir("src/components", "Reusable components"),
			dir("src/screens", "Screens"),
			dir("src/navigation", "Navigators"),
			dir("src/hooks", "Custom hooks"),
			dir("src/utils", "Helpers"),
			dir("src/types", "Shared types"),
			dir("android", "Android project"),
			dir("ios", "iOS project"),
			dir(".vscode", "Editor settings"),
			file(idManifest, "package.json", "react-native/package.json.tmpl", "Package manifest"),
			file(idAppConfig, "app.json", "react-native/app.json.tmpl", "App registration"),
			file(idIndexEntry, "index.js", "react-native/index.js", "Application entry point"),
			file(idBabelConfig, "babel.config.js", "react-native/babel.config.js", "Babel configuration"),
			file(idMetroConfig, "metro.config.js", "react-native/metro.config.js", "Metro bundler configuration"),
			file(idAppEntry, "src/App.jsx", "react-native/App.jsx.tmpl", "Root component"),
			file(idGitignore, ".gitignore", "react-native/gitignore", "Git ignore rules"),
			file(idReadme, "README.md", "react-native/README.md.tmpl", "Project readme"),
		},
		layers: []layerDef{
			{
				name: "navigation",
				when: func(o project.Options) bool { return o.(project.ReactNativeOptions).Navigation },
				replace: []entry{
					{id: idAppEntry, src: "react-native/App.navigation.jsx.tmpl", desc: "Root component with navigation container"},
				},
				add: []entry{
					file(idNavigator, "src/navigation/AppNavigator.jsx", "react-native/AppNavigator.jsx.tmpl", "Stack navigator"),
					file(idHomeScreen, "src/screens/HomeScreen.jsx", "react-native/HomeScreen.jsx.tmpl", "Home screen"),
				},
			},
			{
				name: "typescript",
				when: func(o project.Options) bool { return o.(project.ReactNativeOptions).TypeScript },
				swap: &extSwap{
					ids:  []FileID{idAppEntry, idNavigator, idHomeScreen},
					exts: map[string]string{".jsx": ".tsx"},
				},
				add: []entry{
					file(idTSConfig, "tsconfig.json", "react-native/tsconfig.json", "TypeScript configuration"),
				},
			},
		},
		nextSteps: func(name string, _ project.Options) []string {
			return []string{"cd " + name, "npm install", "npx react-native run-android  # or run-ios"}
		},
	}
}
