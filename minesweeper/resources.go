package main

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jan-bar/LittleMine/atlas"
)

// sheet 格子,计数器数字,笑脸三张贴图
type sheet struct {
	tiles, digits, faces *ebiten.Image

	cache map[subKey]*ebiten.Image
}

type subKey struct {
	img  *ebiten.Image
	uv   atlas.UV
	w, h int
}

// 悬停时在格子上叠加的高亮
var hoverColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x50}

func loadResources() (*sheet, error) {
	//goland:noinspection SpellCheckingInspection
	bd, err := base64.StdEncoding.DecodeString(sd)
	if err != nil {
		return nil, err
	}

	data := bytes.NewReader(bd)
	zr, err := zip.NewReader(data, data.Size())
	if err != nil {
		return nil, err
	}

	s := &sheet{cache: make(map[subKey]*ebiten.Image)}
	for _, fv := range zr.File {
		fr, err := fv.Open()
		if err != nil {
			return nil, err
		}

		img, err := png.Decode(fr)
		_ = fr.Close()
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", fv.Name, err)
		}

		switch fv.Name {
		case "ico.png":
			ebiten.SetWindowIcon([]image.Image{img})
		case "mine.png":
			s.tiles = tileSheet(img)
		case "num.png":
			s.digits = ebiten.NewImageFromImage(img)
		case "face.png":
			s.faces = ebiten.NewImageFromImage(img)
		}
	}

	if s.tiles == nil || s.digits == nil || s.faces == nil {
		return nil, fmt.Errorf("resources: missing sprite sheet")
	}
	return s, nil
}

// tileSheet 第1列为原始素材条,第2列生成悬停时的贴图
func tileSheet(strip image.Image) *ebiten.Image {
	src := ebiten.NewImageFromImage(strip)
	dst := ebiten.NewImage(2*atlas.SpriteSize, src.Bounds().Dy())
	dst.DrawImage(src, nil)

	hover := func(from, to atlas.Sprite) {
		f, t := from.UV(), to.UV()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(t.U), float64(t.V))
		dst.DrawImage(sub(src, f, atlas.SpriteSize, atlas.SpriteSize), op)
		vector.DrawFilledRect(dst, float32(t.U+1), float32(t.V+1),
			atlas.SpriteSize-2, atlas.SpriteSize-2, hoverColor, false)
	}
	hover(atlas.Unrevealed, atlas.Hover)
	hover(atlas.Flag, atlas.HoverFlag)
	return dst
}

func sub(img *ebiten.Image, uv atlas.UV, w, h int) *ebiten.Image {
	return img.SubImage(image.Rect(uv.U, uv.V, uv.U+w, uv.V+h)).(*ebiten.Image)
}

// sprite 缓存子图,避免每帧重复创建
func (s *sheet) sprite(img *ebiten.Image, uv atlas.UV, w, h int) *ebiten.Image {
	k := subKey{img: img, uv: uv, w: w, h: h}
	if si, ok := s.cache[k]; ok {
		return si
	}
	si := sub(img, uv, w, h)
	s.cache[k] = si
	return si
}

func (s *sheet) tile(uv atlas.UV) *ebiten.Image {
	return s.sprite(s.tiles, uv, atlas.SpriteSize, atlas.SpriteSize)
}

func (s *sheet) glyph(g atlas.Glyph) *ebiten.Image {
	return s.sprite(s.digits, g.UV(), atlas.GlyphW, atlas.GlyphH)
}

func (s *sheet) face(uv atlas.UV) *ebiten.Image {
	return s.sprite(s.faces, uv, atlas.FaceSize, atlas.FaceSize)
}

// 素材: ico.png 图标, mine.png 格子, num.png 计数器数字, face.png 笑脸
const sd = "UEsDBBQAAgAIAEdVYVjiKY4C/wIAAPoCAAAIAAAAZmFjZS5wbmcB+gIF/YlQTkcNChoKAAAADUlIRFIAAAAYAAAAeAgGAAAA6IMyogAAAAFzUkdCAK7OHOkAAAAEZ0FNQQAAsY8L/GEFAAAACXBIWXMAAA7DAAAOwwHHb6hkAAACj0lEQVRoQ+2YAYoqQQxEPfoczZu5v4SSTLbSqay2f8FteDimk3raOiBejuO47eQuuF6v2/gTtIwEl8vlG6ovYgkYdrt9pxO1gio4U0mWAjecKEkpmIaTLLEFeO7WTjlKkIc4qMKq3keWK5jwgYJOqPofWUpw3zAlq/B7jivgcEb1nHIqAVABK3L4PWMlAK5Ehd/nOwHAcCXinpoDloAwLKL6IiPBT9gv+HeQ29ZWAcJxOg9BfFuvAOG/SzD9itoChk1vMktQBWeUpBW44SRLloJpOIkSW4DrjpEgD2RW9ShpBfExsqrZAjaD4zgHEdawn2utIAZN+f8CJamkqo8ZIwGHM6rHEgAVsCKGg1YAXEkOB5YAYLgScU/N2QLCsIjqI2PBlJMgFl7NZWc4eBzRjoUXv03Ak3nPh4ylmp5hLNh2HzBsy51cBWeUpBW44SRLloIYzussVHVcjwU5ZFW3BFX4pD4STPlgAeqZqm8pUJJVWH7ODFtQhZPcawlAF5yJ4aAVAFeSw4ElABiuRNxTc7aAMCyi+shYMOUkiIVX8/e7qFw8mfd8yFiq6RnGgm33AcO23MlVcEZJWoEbTrJkKYjh/K8i/idR1aPEFuCasFbVcd0KctDkHQBKbMGU3y3AHlH74McCnjmu8ZjPnrSCSpJrVQ8zxgLnHdgCoCSoEbUX51sBUEGKHA4sAaheMYNVOLAFhGER1UfGgiknQSy8mr/fReXiybznQ8ZSTc8wFmy7Dxi25U6ugjNK0grccJIlS8E0nETJSIDnbq0V5CEOqrCqdyyY8IGCTqj6l4KJpAofCzicUT2WAKiAFTEctALgSnI4sAQAw5WIe2rOFhCGRVQfGQumnASx8Go2/y46bl/hAJU1TWrZqgAAAABJRU5ErkJgglBLAwQUAAIACAD4VmFYi4Hk444PAACJDwAABwAAAGljby5wbmcBiQ928IlQTkcNChoKAAAADUlIRFIAAAAwAAAAMAgGAAAAVwL5hwAAAAFzUkdCAK7OHOkAAAAEZ0FNQQAAsY8L/GEFAAAACXBIWXMAAA7DAAAOwwHHb6hkAAAPHklEQVRoQ+1ZaWxc13U+s3MVSdG0LGqb2Ja1OI7oWm1sp4nINEab1olpJ3EatKnpwk2DFIhtFAkMBI6tX2mLArKKAEGdopKBAA7gFJaQFkUQJKZro7bRRZRiS5QobuI2wxnOxlneOq/fd+97FEccGnHNPwV6oKP75r777vvOfu6j/F+nkD9uGZ07N90dr8efch332JXxTPd772YKU/Plky+9/MUz/pItpbA/bhkB/Imdu7ue693ROXhTX8dAd3frYN12Xj328R8O+ku2lLbEApcuLSXFlcF63TmWni2P7P3IdjU/eTkjFy6k5T/H0lKx3cJXv3xgrFZ1xxy7/voT3/zElljkQwkwO50ecV15zHW9Qa/uieeJjJ9fXts0m6nIpfGsnHtvRSqeLd/686Ni1GypmY5YhluoVe0zjuOc/Pbx3x3zH/nA9L4CHLv/xYGrC8XuhWq5IJnjay+5Np0ZDoXlRCgUTqoJAK/X62LZYKMuPzs7LqurpuQLpoxPFiS9UhUTAjxw7x7p6kxIz/ZWaW2LQhhHDMPlOFo3vcePn/zsDLd74+eXBicn849dHl+RKxOFl/7pX746qt7ThDYV4Gt/8sqpVNoYWVyuyEy2IFkr/8L0288cj4TdV6ORyGAIT4bD+nFqvg4LIHAlFo/Jr/5jQf4LPAHwxZIpS5mazOXysvumdunv65C+nja55zf7pVq1xYI1TAhRwbVtuscfevTgTGp+9dS7v8rI+JW8zC+VJbdqPH7x4jdPq5fdQBF/bKAX/+7NkbZE9Hnig4tgUURu3dt372cGk89s60wkY9EwgIYlgjESIYeEAvG/aDgsqYWSZCG4YdhSrjqyWrFlAkpwbFeBjScicsftveLBao7jieNCeLcO9gZnp4vDmXRFLk8UFPj8qiH5sjFQLv78pEbXSE2zUF9fa3Lnrk7Zs6dDkuDhB/fLS3//eend3qK0HomSoxKLxRTzOhqNSBTCrBQMf5dGMuu2FMOefHroVnnws/sFLqj2ouBKeBDHQt6QufmypJarGnzFkBXL0K7ahJoK0L+na6ZvB8y9a5vc/9u75Ut/eFhiAK3AQ9vhSAQclgQ0SY7FIgAUxpxIZ0fU3+U6tbZG5YlH75FX/vZB+RTioK015t+5ThElTIjhpBy7uysuJcOSrGmIJfkPHgNvv3H1nGk4A703tUm8JSYtLdB4HJqOhSUOP+d1PA5B8GLDcMS2HMQA/Nl0ZXa2KMtwoyKsYViuJJPb1FoVtIpt5fMWnmMcMJBruEZmUvNVrOGYylbl9cmrBQkbQ7J4smmm2rSQedHIw93dcBlo3GOUcm7dSJ+tg+nXjGLOaYYFd7bLwY/2ydF7++Xj4B64XvDcptTk1rb2uNy399Yzm4EnbSpA2HWeVPbxKACD2VOZps4RkU3w1DbZceoqIOuQhemUa0mBUMFvnW713I0UrL3RJVrj0ZFPvE8VbyrAa/96aRB7PaWLE4FD077GdbYAw11sG6kP7JCRQm0IoqzCtXy2HgATJaTr70eBeE8LwzX6vRz1c5zUcyQo55R/uYGaCmC77nPUNIEQLHd2AYAg6DKWhYIFdlG4yLy2MTo2hEJaJABlJWUV/qbAgdv5llTgNat1636T1LW/Do8kf+PID0bUjRtogwCvvnwuWXe8Qe0aBOK/FIBsgidoahtBa5gIQDCvKZjSMu6R+QwtQjZNAuQ+2sWY99WohNLuGQB2AtBgyoJBCxXynvMhNtAGAfDYkxbBgAnYRBahe9DkChy0rLMOhbjOag7rA/DUNpo2LTSUQQtRGXrkfb1GWUcJJGIFAmnU2poY/Z/JI4e/P+DDXKMNAhhVd5jmplsgjaqX0ho2gNONeI+uYlla82RLpVANnmu4ls/wt1nTCtAuqC3IsY7ftIgGD8ZIYWgF9R5lLYLXQpDx1GM+zDVqEODU998ccF03qdyB2oMQ1QrcAxsql1JW0YLwPoEoVusDa1wHz2ctzvn3qJRA+zbu071YJ5QQUJRFoSCEjd+MP7JOBNqNYJkN2ahBALxogO4TuAU1y7GGXoY9DIHRVUw0YErzqvjoa86pe1jP60oZhSrYAzFA11F7QwHck0ohaB3wUBCEC/oiWsKyqX1kL1rFtwB+b3AhlXZfPnUuOT2RGe7f2/XQXQO3DLJBY8VllU0vrUIAU7UOMcxxniPvrSf6Ld2L4FKLZSnkDCmhE51PVSS5r1N6e1s1cAjByktl1FBxKZgNgVl9q5xHA1iB23lolv7gc/tVXHgwA91p/Aq64qw5tjCbHTWc6snz55+eCZ390fmRzq74KW524UJKZhYq8hffOOrD0jQ/l1PaibIfQmXW3WejAMrE0F4mXYU0Idm1u1NWVmry3nvL8ss35+S++3bK3v5OFVd0zQreR2GYoQi6RvAQsIY2g4I88vAhVPHd/u4iU0uOFL2EjL1xVcbeuSpzqXyhajlDka/96ZOvHb57Z0sLeptCrioTEysyOZmjSpX2yUbVUrZS6Y2BR03Dh5UvU4MA4sDkdIvUQlnu/NgOuf3QzdKK/qmEfmgeFnkHyjlysBfr9Hr1nIVkAUvoTId4A3DGSQ1zdx3qlYW54hpfnjGVBTOLBVleykuparZYdacl8ujw1/+qvS2uGq95LsQh5MpUTqLQaDpVVlxataSzK9HgswzGgIOALpct7GPKLTvhMn3tUszV1J4z10oytVCQazlTbtvZgdrBGGMBhDuBeU2XYlDXcKJjMEeQ0Jdxpgh4HOfr7FJJFueyspKvSBn1p2zYhchdBx55PpetqBddmcjJxat5KZZNaBln2ryp+N/Pp+Xox26GUTRwvkjleYyBBahFutHMdFFV53LJkGko4hrAX8K+i/myzGRKcmBXj0Thftp9dJZicDO90p2UcDBzvmDJ8oqxxqnlouRWyrKMfSqmJXAfMRx3NNKWeGAwlS4nqXmCv5YpSmdrQkW3yijgpVxZDt22XRLo+3WO1q4TCEEQQWqdX6zIEtxueqqAg0lJ3sWxcDZdlJJpCk8K+SKs0L9NKr678Hlqn3sweG3sqQoaLE0MqhaAVxEzuUpVLAhXAfiKY0u4Hn480tr5qbPTi1UcRIsHSwbM37tNbkYbnUIAVqGhlXIVmzqyvbNFejFP8IyBtYIDVlYBeILp7IjLW/+dkun5VZmcK8kcFLIKjSVwCIrh0FNFkG5ra5EYshrdjn6v6g1cR7ceGrzFYkgt+xZi0jMg3ErFGLPr9beNuvsVO/PcWEMq+cZjPxlBCj2F9Cv//PqUnvRpBw7kn//MbSoD8fTENeuJG/HF1FY6U5Gzv5gUEwCxHPcaXiNdHS0ycEefHwta8/R7k8FNhcBVWcR47aBc03XJNlw04cV7ZmefLvhbNR7qD9/xRRaOr0M5yvep7Qi0RuaJqbM9Jm3ILErbuEeNB0wXYCxwjMPVemAxnmujOGcGewTM9V04rDA1q8yD3zbac7qOavrAnHOR/3UBg4XJjjezNPetv/bhKmoQ4PzFV1J3HvjCCLTYzULFLwo8qAdM0Dt629WoXAla0nGghaFrcZ7XLTgr8zDEzMQvFTdyBIUKBlJAHfi1ycrrgzehoLoqXlrzDsC7YIynjdIvfubDVbShmbNMe5QtQXdnHNqOSQL1IeA6MhMLDc+1rJ48w5J5zTne41mWn1FqGPuRSvkNKB7D+fkGZqtAF9Gu0wg+0LoSAL5K8OyPwp6c9WGuUaNzgn7/gVMDMPu5RAyHdQRXDuksoD60Azf1JNBG+BN4mpdwe0Uwhuq8GAcEQUvRpfhhi1ZZT6zk7HO45kbwdJ3A76l9CgmLzOQXvvMR//E12vBha2LqbGpv/4ODwJAMwY1a4oSIsSWC7AErKGDYEC9WrbXvNmRqlE0ZY0SPrLCe8EOYC3eiW5KxVPs49tGCaksorTcFr97ztFX55YbD/QYLkPgp3AuHXosihdD3+U2I1/wYRc0xCzUjZiECAgZlchUbjBFccz5okwMLUevBfeXzmFsPnuvVdd2dWV16doP2Sc2RgO4/+uKrSCDDBBwws1PwAQppvYHwPmUFNQJgIEzgyzBGA3CdcgmOI9dp4Erb4AC8mpP6w+Wl7zb9HL+pAEeOnOhub+vIs9kiaIIn8DCYxOv1RGAkAuAdDUAD5q0AOEfdIhO0Bh4ISeC8DtxGCeB5ZyqpZx9WmzchOnhT+t7x3znx5eH9yk/p2wxoVsUqBGLBMVSVvM6cq+F+sIbPBGkWpzz85nM6ULUFWKCCIoX7FBigTT7ngw8jWxza1bdWtJrRhiAmnf3xuaeyy5Vn8jiUrKITVR9ssSn+KVImb8Jay57072iX/fu6pL0V3Q+CdwWNHZ9d0zjqOIVQWsY8NR+kymDexNgaiUpbLDJw4LZHumfnf9qQ/wNqaoF0uvLQzBRaa5yA0ln9hZga1H0JagCuN+OOjph85QsHZE9/u/Rsi6N+sDHGQadaXdM4CxdTqMVrCESXYRNHS/G3G/JQqWOStVclW6lJuWY/xT+2+PAaqKkA09MFuXy1IBfGs3IltSLztZSM54roBAmeL2T5b8Jwow6A5t8NYlH94ZfEqltDq0DwNiyEZky3BtC4Sqf4re4BfB8q/Z997qPyW/t7ZXtrqyyhmUwXKpIpGL++AFcnCy+NT+VlIpOTnJ1GxFpSD2XGVi3nbsdzR6nB4KUBa63y+5HvZyD6cBDswKs0bmON5QPXhUxr3aLmPXnhxHc+PXbwjl45fHuf3L1vu/S0R2WxAgHQhaqNbqCmArzy0z8+PbtSOr7qZgsSUhX0tCTCQ5nZb49NTfzlEFzhcRw6ZtTLfVZCgBOt18OK2GmFRCys/F67CmuB/xyDFwJbbn3U80JDZvq7T3e1eEO39HeM7dvbI3fuv1kJkYiHTvPd/rYN1JgLPyDt2Pc3I6FQ/UlUhjXzfumhQ/LJe/pldHROMpmq6otSK1W5uJyVlhDiAaagMHB55nfk9vBJM/3shj9gvPwP74zMz5WSlyaXx/7xR3+06Z9kP5QAAXXt+14y4njDqADHHvm9AwPXJktJHhfX00K+KqlCYcyth8a8kPe6abhnpHj8fVPkr0NbIsB6+uR9P3weFmn6Ifbf3npiy9+3aSH73xKs0NRX4Tmb/pXlw9CWC/DmW0+cCdW9ISA+g8QzSgb8F8KJyJC/5P/pOon8DzLPPO3UMZbOAAAAAElFTkSuQmCCUEsDBBQAAgAIAMJTYViPl6QvjQMAAIgDAAAIAAAAbWluZS5wbmcBiAN3/IlQTkcNChoKAAAADUlIRFIAAAAQAAABAAgGAAAAulL2TgAAAAFzUkdCAK7OHOkAAAAEZ0FNQQAAsY8L/GEFAAAACXBIWXMAAA7DAAAOwwHHb6hkAAADHUlEQVR4Xu2VAXbjIAxEffQcLTdLEbHIIEsCDLi0cd77dotm/mKy691eHZ/n8/k6LaDy4/H4CGihBSrfglvw3wS40MrWUybSI5z50B9+WsA7n/stvLYwDmgzV8DFUwJZbhYQ3QKmW0BsvyagIiLnpkAWJfMFtWQCXGjlfh84AuvrY1yBLGmSuQJJl0ArE1UCq0xcI/C4ZgfXPQIutNL/PtAWW4iCcFKnKQroW5BryHgBF/jvABIu6c6oO5BFJFzyrLaDGNw/WE4zYJxAC5YIF3sHHuHyyQ8XxEWHcMmz2g74LgmXdGfUHSCyIJkvKBEFPUQBvutaKQroDLR1Jgn4mQ4BZQ2z2Q6yQbhLZCbm5CNwQBOES1YmDgIM4j9nXqOfs7wmkAX82RTwEAmXQxnJBMkIgXBRBVl+2CMgsoASmT0IOIhlT5IJ1ID4XWaSQCvHgLKGWfUMWoiCHsbsQBsw2hkg4wVcoLsE5ymv7UAWkUNW2wHBHywzWX6YQAuWyATJqAQlWX64IC4qJeaQ1XbAdwnOU17bASILkvmCElHQw5gdaINa5gr4+2fUjCWQJUsyTyDpEljlOCsJvDIxX1DiGx6hRBT0sMgj4AJvzQKzRCaQYYsqAYa82VgBgUENzBLzDhFD3myewMMUEDIswSxxELSyiKCHxc6A38Al5gk8fldgleNsusArx/lUQalMzBXUsIighwXPICy4YHbPfxZlWAPLe0cXYMhjnsACy3unTUBUCTDkzcLvkwQepmBfcMHsnj8utrCIoIfFzuARXt81XCPAkMc8gQWWibFn4HGNAEMeXQIsE9WPYLGIoIdFz2DbwtZ2tN+z7HCBFtbW0myoAIMe8wQWVjnOvkTgsYigh8XOIHxPRbBMNAsIU+BxvQALiMzNE0gsyVgBhjy6BFgmqh/BYhFBDwuewfbYXDD7zoNAK2hUCTDkzarP4LQAi7L8nhsCWdTK75wQ1BYZ8xBLRcYVWMwTnGERQQ9/4Az4ja7NCFcA/x2oc8IUYLlZIMvNAuabBViUHLJTBC0sIujhv5yBNqjlFtwC4s8Lnq8fm5eUXyL4GKsAAAAASUVORK5CYIJQSwMEFAACAAgAKVVhWGRjEaoNBAAA/AQAAAcAAABudW0ucG5n6wzwc+flkuJiYGDg9fRwCQLRDAyMIhxsQNYH1z2zgRRjcZC7E8O6czIvgRyWdEdfRwaGjf3cfxJZgXzOAo/IYgYGvsMgzHg8f0UKUM1ETxfHkAznq1NvT7ptwOP8++Xfz2IlLDPFA3z+PDsnE8HIYXgy77b9j8/vGb937z98WfBs8MG5vzdoSlSdUP6U5BGkl8/VsUdi0pTTs5mU9NtUnm5nzPxYHJ6pJXAubunx2Zeq9Zb8Mdu16ES3oufOPZoKCB2fhOrZnjsFr3m2cofGMXOP4kd1Hy/f/vxs5YNztTdEeGyfCFYaqmhON2d1iePxPPXUl3GiuPOkTxlPokPZVlVq6S2q1NpRzCuqeX17FbKCospghydHJ0z/YWwhPivJ1P+oq+E+x1nC85lTVKZk3Nh8+PxbId55tpVqU+ZINjyJmcXocW4pMuNPjMKEqE+Nh87HLl3pYFE99Ud0jiP751ijI+vrGYS82/ebi0+IMvKbrbD1yyJfsZQ9+5+dZz1UM30Z08M3en87TNTt2E94aFzckN4+/7aqlE31Jx8NS2OGkztNmCfM8UZm/NzpoLD1CXPr/N1ewY0F37SgWtI9FHY9OcOg8vwSj0OR3llkxsUHNyenl63UFrAvn4pqne2/7X8+/peqSVPYmlLCyhzkrX8/xeGLWn3YbUWb+2nhH466mvizcpw3DXH4kv6qC+b8Tb6vhDruPTkfWzg3f7P2j0eLJO4rnO08z2gk5GXy5mbizt85hkAbudxkT3TkF+pJ5t/dwtN550h6+9PEyyEKc/aCFD18XnZSUqhDD7sXK00qvj2ZGfuK6wgkLHd72yshWVD5e/qEdH8tiVKFw013UnQ2f7jme3rCCd+asgg5M1/WQzdXH5HWeZGwz9ut6jyrh87GC6KKW1PmmDlmvXSdrXOiov7sfO6Wn3oghbG/BDP97uh/2j5jft+POpBPvzaXsSbv3cebzqZgOT2NYVJxJjLDXpxjybSaBR+gKVT1n4AuyJ62/y+1FTYuqcu1ISKEas6LlRjcV30c8uXfLPs6b1Ca2NXEuHLp9HwjhSphZtbPsbO4WjaHv/y47Pj8ldpOWSctcpuuXOo2i5zwEahBnAMiv/uL8qU5P2QUlBd++dFd8Wfq55mNVyZdFOXx0N1bM5nx4mwJjRnvL8ECGxgjHIYvPObvvDcj0THPaFpkxWu1+m9LmgrZv73ZYJMDN29H/JN8TXvZizaiCjbXN2hLvN4q98kh6+QLLrYl0+L2nWx44ftvzTbnin1n1z3o7s6YxyUwL3tFw4vzV+Dhmzr7iqrA3pPzdz+ygqQe0vNPUsWvvc0fambHHhQX5ze/yU1Ksq49P7/+P+OJ5dcT/ffwaAFLLAZPVz+XdU4JTQBQSwECFAAUAAIACABHVWFY4imOAv8CAAD6AgAACAAkAAAAAAAAACAAAAAAAAAAZmFjZS5wbmcKACAAAAAAAAEAGAApCE0QgmvaAUA/IReFa9oBDeFMEIJr2gFQSwECFAAUAAIACAD4VmFYi4Hk444PAACJDwAABwAkAAAAAAAAACAAAAAlAwAAaWNvLnBuZwoAIAAAAAAAAQAYAIeMX/aDa9oBD4gzCIVr2gFKo5ixg2vaAVBLAQIUABQAAgAIAMJTYViPl6QvjQMAAIgDAAAIACQAAAAAAAAAIAAAANgSAABtaW5lLnBuZwoAIAAAAAAAAQAYADjB412Aa9oBdSQ0CIVr2gFnUll6gGvaAVBLAQIUABQAAgAIAClVYVhkYxGqDQQAAPwEAAAHACQAAAAAAAAAIAAAAIsWAABudW0ucG5nCgAgAAAAAAABABgAqput74Fr2gF1JDQIhWvaAZl0re+Ba9oBUEsFBgAAAAAEAAQAZgEAAL0aAAAAAA=="
